package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type LaserCutterServiceInterface interface {
	GetLaserCutters(ctx context.Context) ([]dto.LaserCutterDTO, error)
	FindLaserCutter(ctx context.Context, id uint64) (*dto.LaserCutterDTO, error)
	CreateLaserCutter(ctx context.Context, payload dto.CreateLaserCutterDTO) (*dto.LaserCutterDTO, error)
	UpdateLaserCutter(ctx context.Context, id uint64, payload dto.UpdateLaserCutterDTO) (*dto.LaserCutterDTO, error)
	DeleteLaserCutter(ctx context.Context, id uint64) error
}

type LaserCutterService struct {
	laserCutterRepository repositories.LaserCutterRepositoryInterface
	logger                *zap.Logger
}

func NewLaserCutterService(laserCutterRepository repositories.LaserCutterRepositoryInterface, logger *zap.Logger) *LaserCutterService {
	return &LaserCutterService{laserCutterRepository: laserCutterRepository, logger: logger}
}

func (s *LaserCutterService) GetLaserCutters(ctx context.Context) ([]dto.LaserCutterDTO, error) {
	return s.laserCutterRepository.GetLaserCutters(ctx)
}

func (s *LaserCutterService) FindLaserCutter(ctx context.Context, id uint64) (*dto.LaserCutterDTO, error) {
	return s.laserCutterRepository.FindLaserCutter(ctx, id)
}

func (s *LaserCutterService) CreateLaserCutter(ctx context.Context, payload dto.CreateLaserCutterDTO) (*dto.LaserCutterDTO, error) {
	res, err := s.laserCutterRepository.CreateLaserCutter(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании лазерного резака", zap.Error(err))
		return nil, err
	}
	s.logger.Info("лазерный резак создан", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *LaserCutterService) UpdateLaserCutter(ctx context.Context, id uint64, payload dto.UpdateLaserCutterDTO) (*dto.LaserCutterDTO, error) {
	res, err := s.laserCutterRepository.UpdateLaserCutter(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении лазерного резака", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *LaserCutterService) DeleteLaserCutter(ctx context.Context, id uint64) error {
	return s.laserCutterRepository.DeleteLaserCutter(ctx, id)
}
