package dto

type CreateEquipmentTypeDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateEquipmentTypeDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type EquipmentTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
