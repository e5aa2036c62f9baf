package services

import (
	"context"
	"fmt"
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"
	apperrors "workshop-system/pkg/errors"

	"go.uber.org/zap"
)

// WorkerService - чтение и правка учётных записей. Создание работника
// живёт в AuthService: оно идёт только через регистрацию с паролем.
type WorkerServiceInterface interface {
	GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error)
	FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error)
	UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error)
	DeleteWorker(ctx context.Context, id uint64) error
}

type WorkerService struct {
	workerRepository repositories.WorkerRepositoryInterface
	logger           *zap.Logger
}

func NewWorkerService(workerRepository repositories.WorkerRepositoryInterface, logger *zap.Logger) *WorkerService {
	return &WorkerService{workerRepository: workerRepository, logger: logger}
}

func (s *WorkerService) GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error) {
	return s.workerRepository.GetWorkers(ctx)
}

func (s *WorkerService) FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error) {
	return s.workerRepository.FindWorker(ctx, id)
}

func (s *WorkerService) UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error) {
	if payload.WorkerPositionID != nil {
		exists, err := s.workerRepository.WorkerPositionExists(ctx, *payload.WorkerPositionID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewHttpError(
				http.StatusUnprocessableEntity,
				fmt.Sprintf("Worker position with id=%d does not exist.", *payload.WorkerPositionID),
				nil, nil,
			)
		}
	}

	res, err := s.workerRepository.UpdateWorker(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении работника", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *WorkerService) DeleteWorker(ctx context.Context, id uint64) error {
	return s.workerRepository.DeleteWorker(ctx, id)
}
