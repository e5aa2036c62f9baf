package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type LaserCutterRepairServiceInterface interface {
	GetLaserCutterRepairs(ctx context.Context) ([]dto.LaserCutterRepairDTO, error)
	FindLaserCutterRepair(ctx context.Context, id uint64) (*dto.LaserCutterRepairDTO, error)
	CreateLaserCutterRepair(ctx context.Context, payload dto.CreateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error)
	UpdateLaserCutterRepair(ctx context.Context, id uint64, payload dto.UpdateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error)
	DeleteLaserCutterRepair(ctx context.Context, id uint64) error
}

type LaserCutterRepairService struct {
	laserCutterRepairRepository repositories.LaserCutterRepairRepositoryInterface
	logger                      *zap.Logger
}

func NewLaserCutterRepairService(laserCutterRepairRepository repositories.LaserCutterRepairRepositoryInterface, logger *zap.Logger) *LaserCutterRepairService {
	return &LaserCutterRepairService{laserCutterRepairRepository: laserCutterRepairRepository, logger: logger}
}

func (s *LaserCutterRepairService) GetLaserCutterRepairs(ctx context.Context) ([]dto.LaserCutterRepairDTO, error) {
	return s.laserCutterRepairRepository.GetLaserCutterRepairs(ctx)
}

func (s *LaserCutterRepairService) FindLaserCutterRepair(ctx context.Context, id uint64) (*dto.LaserCutterRepairDTO, error) {
	return s.laserCutterRepairRepository.FindLaserCutterRepair(ctx, id)
}

func (s *LaserCutterRepairService) CreateLaserCutterRepair(ctx context.Context, payload dto.CreateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error) {
	res, err := s.laserCutterRepairRepository.CreateLaserCutterRepair(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании записи о ремонте резака", zap.Error(err))
		return nil, err
	}
	s.logger.Info("запись о ремонте резака создана", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *LaserCutterRepairService) UpdateLaserCutterRepair(ctx context.Context, id uint64, payload dto.UpdateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error) {
	res, err := s.laserCutterRepairRepository.UpdateLaserCutterRepair(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении записи о ремонте резака", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *LaserCutterRepairService) DeleteLaserCutterRepair(ctx context.Context, id uint64) error {
	return s.laserCutterRepairRepository.DeleteLaserCutterRepair(ctx, id)
}
