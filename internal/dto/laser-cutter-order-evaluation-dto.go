package dto

type CreateLaserCutterOrderEvaluationDTO struct {
	OrderID      uint64 `json:"order_id" validate:"required"`
	QualityScore int    `json:"quality_score" validate:"required"`
}

type UpdateLaserCutterOrderEvaluationDTO struct {
	OrderID      *uint64 `json:"order_id,omitempty" validate:"omitempty,gt=0"`
	QualityScore *int    `json:"quality_score,omitempty"`
}

type LaserCutterOrderEvaluationDTO struct {
	ID           uint64 `json:"id"`
	OrderID      uint64 `json:"order_id"`
	QualityScore int    `json:"quality_score"`
}
