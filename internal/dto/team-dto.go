package dto

type CreateTeamDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateTeamDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type TeamDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
