package dto

type CreateEquipmentRepairDTO struct {
	DateOfRepair string `json:"date_of_repair" validate:"required,datetime=2006-01-02"`
	WorkerID     uint64 `json:"worker_id" validate:"required"`
	EquipmentID  uint64 `json:"equipment_id" validate:"required"`
}

type UpdateEquipmentRepairDTO struct {
	DateOfRepair *string `json:"date_of_repair,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WorkerID     *uint64 `json:"worker_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentID  *uint64 `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentRepairDTO struct {
	ID           uint64        `json:"id"`
	DateOfRepair string        `json:"date_of_repair"`
	Worker       *WorkerDTO    `json:"worker,omitempty"`
	Equipment    *EquipmentDTO `json:"equipment,omitempty"`
}
