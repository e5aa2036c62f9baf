package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type WorkerPositionServiceInterface interface {
	GetWorkerPositions(ctx context.Context) ([]dto.WorkerPositionDTO, error)
	FindWorkerPosition(ctx context.Context, id uint64) (*dto.WorkerPositionDTO, error)
	CreateWorkerPosition(ctx context.Context, payload dto.CreateWorkerPositionDTO) (*dto.WorkerPositionDTO, error)
	UpdateWorkerPosition(ctx context.Context, id uint64, payload dto.UpdateWorkerPositionDTO) (*dto.WorkerPositionDTO, error)
	DeleteWorkerPosition(ctx context.Context, id uint64) error
}

type WorkerPositionService struct {
	workerPositionRepository repositories.WorkerPositionRepositoryInterface
	logger                   *zap.Logger
}

func NewWorkerPositionService(workerPositionRepository repositories.WorkerPositionRepositoryInterface, logger *zap.Logger) *WorkerPositionService {
	return &WorkerPositionService{workerPositionRepository: workerPositionRepository, logger: logger}
}

func (s *WorkerPositionService) GetWorkerPositions(ctx context.Context) ([]dto.WorkerPositionDTO, error) {
	return s.workerPositionRepository.GetWorkerPositions(ctx)
}

func (s *WorkerPositionService) FindWorkerPosition(ctx context.Context, id uint64) (*dto.WorkerPositionDTO, error) {
	return s.workerPositionRepository.FindWorkerPosition(ctx, id)
}

func (s *WorkerPositionService) CreateWorkerPosition(ctx context.Context, payload dto.CreateWorkerPositionDTO) (*dto.WorkerPositionDTO, error) {
	res, err := s.workerPositionRepository.CreateWorkerPosition(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании должности", zap.Error(err))
		return nil, err
	}
	s.logger.Info("должность создана", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *WorkerPositionService) UpdateWorkerPosition(ctx context.Context, id uint64, payload dto.UpdateWorkerPositionDTO) (*dto.WorkerPositionDTO, error) {
	res, err := s.workerPositionRepository.UpdateWorkerPosition(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении должности", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *WorkerPositionService) DeleteWorkerPosition(ctx context.Context, id uint64) error {
	return s.workerPositionRepository.DeleteWorkerPosition(ctx, id)
}
