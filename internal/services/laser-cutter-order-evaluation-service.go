package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type LaserCutterOrderEvaluationServiceInterface interface {
	GetEvaluations(ctx context.Context) ([]dto.LaserCutterOrderEvaluationDTO, error)
	FindEvaluation(ctx context.Context, id uint64) (*dto.LaserCutterOrderEvaluationDTO, error)
	CreateEvaluation(ctx context.Context, payload dto.CreateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error)
	UpdateEvaluation(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error)
	DeleteEvaluation(ctx context.Context, id uint64) error
}

type LaserCutterOrderEvaluationService struct {
	evaluationRepository repositories.LaserCutterOrderEvaluationRepositoryInterface
	logger               *zap.Logger
}

func NewLaserCutterOrderEvaluationService(
	evaluationRepository repositories.LaserCutterOrderEvaluationRepositoryInterface,
	logger *zap.Logger,
) *LaserCutterOrderEvaluationService {
	return &LaserCutterOrderEvaluationService{evaluationRepository: evaluationRepository, logger: logger}
}

func (s *LaserCutterOrderEvaluationService) GetEvaluations(ctx context.Context) ([]dto.LaserCutterOrderEvaluationDTO, error) {
	return s.evaluationRepository.GetEvaluations(ctx)
}

func (s *LaserCutterOrderEvaluationService) FindEvaluation(ctx context.Context, id uint64) (*dto.LaserCutterOrderEvaluationDTO, error) {
	return s.evaluationRepository.FindEvaluation(ctx, id)
}

func (s *LaserCutterOrderEvaluationService) CreateEvaluation(ctx context.Context, payload dto.CreateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error) {
	res, err := s.evaluationRepository.CreateEvaluation(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании оценки", zap.Error(err))
		return nil, err
	}
	s.logger.Info("оценка создана", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *LaserCutterOrderEvaluationService) UpdateEvaluation(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error) {
	res, err := s.evaluationRepository.UpdateEvaluation(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении оценки", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *LaserCutterOrderEvaluationService) DeleteEvaluation(ctx context.Context, id uint64) error {
	return s.evaluationRepository.DeleteEvaluation(ctx, id)
}
