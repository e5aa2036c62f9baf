package dto

type UpdateWorkerDTO struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Surname          *string `json:"surname,omitempty" validate:"omitempty,min=1"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber      *string `json:"phone_number,omitempty" validate:"omitempty,min=1"`
	Address          *string `json:"address,omitempty" validate:"omitempty,min=1"`
	WorkerPositionID *uint64 `json:"worker_position_id,omitempty" validate:"omitempty,gt=0"`
}

// WorkerDTO - ответ без пароля, с развёрнутой должностью.
type WorkerDTO struct {
	ID             uint64             `json:"id"`
	Name           string             `json:"name"`
	Surname        string             `json:"surname"`
	Email          string             `json:"email"`
	PhoneNumber    string             `json:"phone_number"`
	Address        string             `json:"address"`
	WorkerPosition *WorkerPositionDTO `json:"worker_position,omitempty"`
}
