package dto

type CreateWorkerPositionDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateWorkerPositionDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type WorkerPositionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
