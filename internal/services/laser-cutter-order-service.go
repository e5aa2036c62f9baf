package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type LaserCutterOrderServiceInterface interface {
	GetLaserCutterOrders(ctx context.Context) ([]dto.LaserCutterOrderDTO, error)
	FindLaserCutterOrder(ctx context.Context, id uint64) (*dto.LaserCutterOrderDTO, error)
	CreateLaserCutterOrder(ctx context.Context, payload dto.CreateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error)
	UpdateLaserCutterOrder(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error)
	DeleteLaserCutterOrder(ctx context.Context, id uint64) error
}

type LaserCutterOrderService struct {
	laserCutterOrderRepository repositories.LaserCutterOrderRepositoryInterface
	logger                     *zap.Logger
}

func NewLaserCutterOrderService(laserCutterOrderRepository repositories.LaserCutterOrderRepositoryInterface, logger *zap.Logger) *LaserCutterOrderService {
	return &LaserCutterOrderService{laserCutterOrderRepository: laserCutterOrderRepository, logger: logger}
}

func (s *LaserCutterOrderService) GetLaserCutterOrders(ctx context.Context) ([]dto.LaserCutterOrderDTO, error) {
	return s.laserCutterOrderRepository.GetLaserCutterOrders(ctx)
}

func (s *LaserCutterOrderService) FindLaserCutterOrder(ctx context.Context, id uint64) (*dto.LaserCutterOrderDTO, error) {
	return s.laserCutterOrderRepository.FindLaserCutterOrder(ctx, id)
}

func (s *LaserCutterOrderService) CreateLaserCutterOrder(ctx context.Context, payload dto.CreateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error) {
	res, err := s.laserCutterOrderRepository.CreateLaserCutterOrder(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании заказа на резак", zap.Error(err))
		return nil, err
	}
	s.logger.Info("заказ на резак создан", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *LaserCutterOrderService) UpdateLaserCutterOrder(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error) {
	res, err := s.laserCutterOrderRepository.UpdateLaserCutterOrder(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении заказа на резак", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *LaserCutterOrderService) DeleteLaserCutterOrder(ctx context.Context, id uint64) error {
	return s.laserCutterOrderRepository.DeleteLaserCutterOrder(ctx, id)
}
