package dto

type CreateLaserCutterDTO struct {
	Model                string `json:"model" validate:"required"`
	SerialNumber         string `json:"serial_number" validate:"required"`
	EquipmentConditionID uint64 `json:"equipment_condition_id" validate:"required"`
}

type UpdateLaserCutterDTO struct {
	Model                *string `json:"model,omitempty" validate:"omitempty,min=1"`
	SerialNumber         *string `json:"serial_number,omitempty" validate:"omitempty,min=1"`
	EquipmentConditionID *uint64 `json:"equipment_condition_id,omitempty" validate:"omitempty,gt=0"`
}

type LaserCutterDTO struct {
	ID                 uint64                 `json:"id"`
	Model              string                 `json:"model"`
	SerialNumber       string                 `json:"serial_number"`
	EquipmentCondition *EquipmentConditionDTO `json:"equipment_condition,omitempty"`
}
