package dto

import "time"

// CreateUserOrderDTO - time_of_order опционально: при отсутствии БД
// подставляет момент создания.
type CreateUserOrderDTO struct {
	TimeOfOrder *time.Time `json:"time_of_order"`
	UserID      uint64     `json:"user_id" validate:"required"`
	EquipmentID uint64     `json:"equipment_id" validate:"required"`
}

type UpdateUserOrderDTO struct {
	TimeOfOrder *time.Time `json:"time_of_order,omitempty"`
	UserID      *uint64    `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentID *uint64    `json:"equipment_id,omitempty" validate:"omitempty,gt=0"`
}

type UserOrderDTO struct {
	ID          uint64        `json:"id"`
	TimeOfOrder string        `json:"time_of_order"`
	User        *UserDTO      `json:"user,omitempty"`
	Equipment   *EquipmentDTO `json:"equipment,omitempty"`
}
