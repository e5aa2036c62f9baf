package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Name    string   `json:"name" validate:"required"`
	Surname string   `json:"surname" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	TeamID  null.Int `json:"team_id"`
}

type UpdateUserDTO struct {
	Name    *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Surname *string  `json:"surname,omitempty" validate:"omitempty,min=1"`
	Email   *string  `json:"email,omitempty" validate:"omitempty,email"`
	TeamID  null.Int `json:"team_id"`
}

// UserDTO - ответ с развёрнутой командой; развёртка только на чтение.
type UserDTO struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	Email   string   `json:"email"`
	Team    *TeamDTO `json:"team,omitempty"`
}
