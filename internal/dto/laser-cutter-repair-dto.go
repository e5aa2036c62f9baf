package dto

type CreateLaserCutterRepairDTO struct {
	DateOfRepair  string `json:"date_of_repair" validate:"required,datetime=2006-01-02"`
	WorkerID      uint64 `json:"worker_id" validate:"required"`
	LaserCutterID uint64 `json:"laser_cutter_id" validate:"required"`
}

type UpdateLaserCutterRepairDTO struct {
	DateOfRepair  *string `json:"date_of_repair,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WorkerID      *uint64 `json:"worker_id,omitempty" validate:"omitempty,gt=0"`
	LaserCutterID *uint64 `json:"laser_cutter_id,omitempty" validate:"omitempty,gt=0"`
}

type LaserCutterRepairDTO struct {
	ID           uint64          `json:"id"`
	DateOfRepair string          `json:"date_of_repair"`
	Worker       *WorkerDTO      `json:"worker,omitempty"`
	LaserCutter  *LaserCutterDTO `json:"laser_cutter,omitempty"`
}
