package dto

import "time"

type CreateLaserCutterOrderDTO struct {
	TimeOfStart   time.Time `json:"time_of_start" validate:"required"`
	TimeOfEnd     time.Time `json:"time_of_end" validate:"required"`
	UserID        uint64    `json:"user_id" validate:"required"`
	LaserCutterID uint64    `json:"laser_cutter_id" validate:"required"`
}

type UpdateLaserCutterOrderDTO struct {
	TimeOfStart   *time.Time `json:"time_of_start,omitempty"`
	TimeOfEnd     *time.Time `json:"time_of_end,omitempty"`
	UserID        *uint64    `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	LaserCutterID *uint64    `json:"laser_cutter_id,omitempty" validate:"omitempty,gt=0"`
}

type LaserCutterOrderDTO struct {
	ID          uint64          `json:"id"`
	TimeOfStart string          `json:"time_of_start"`
	TimeOfEnd   string          `json:"time_of_end"`
	User        *UserDTO        `json:"user,omitempty"`
	LaserCutter *LaserCutterDTO `json:"laser_cutter,omitempty"`
}
