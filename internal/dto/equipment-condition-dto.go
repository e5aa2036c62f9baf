package dto

type CreateEquipmentConditionDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateEquipmentConditionDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type EquipmentConditionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
