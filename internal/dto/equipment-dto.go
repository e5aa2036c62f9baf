package dto

type CreateEquipmentDTO struct {
	Model                string `json:"model" validate:"required"`
	SerialNumber         string `json:"serial_number" validate:"required"`
	EquipmentTypeID      uint64 `json:"equipment_type_id" validate:"required"`
	EquipmentConditionID uint64 `json:"equipment_condition_id" validate:"required"`
}

type UpdateEquipmentDTO struct {
	Model                *string `json:"model,omitempty" validate:"omitempty,min=1"`
	SerialNumber         *string `json:"serial_number,omitempty" validate:"omitempty,min=1"`
	EquipmentTypeID      *uint64 `json:"equipment_type_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentConditionID *uint64 `json:"equipment_condition_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID                 uint64                 `json:"id"`
	Model              string                 `json:"model"`
	SerialNumber       string                 `json:"serial_number"`
	EquipmentType      *EquipmentTypeDTO      `json:"equipment_type,omitempty"`
	EquipmentCondition *EquipmentConditionDTO `json:"equipment_condition,omitempty"`
}
