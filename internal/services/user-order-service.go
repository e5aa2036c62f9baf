package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type UserOrderServiceInterface interface {
	GetUserOrders(ctx context.Context) ([]dto.UserOrderDTO, error)
	FindUserOrder(ctx context.Context, id uint64) (*dto.UserOrderDTO, error)
	CreateUserOrder(ctx context.Context, payload dto.CreateUserOrderDTO) (*dto.UserOrderDTO, error)
	UpdateUserOrder(ctx context.Context, id uint64, payload dto.UpdateUserOrderDTO) (*dto.UserOrderDTO, error)
	DeleteUserOrder(ctx context.Context, id uint64) error
}

type UserOrderService struct {
	userOrderRepository repositories.UserOrderRepositoryInterface
	logger              *zap.Logger
}

func NewUserOrderService(userOrderRepository repositories.UserOrderRepositoryInterface, logger *zap.Logger) *UserOrderService {
	return &UserOrderService{userOrderRepository: userOrderRepository, logger: logger}
}

func (s *UserOrderService) GetUserOrders(ctx context.Context) ([]dto.UserOrderDTO, error) {
	return s.userOrderRepository.GetUserOrders(ctx)
}

func (s *UserOrderService) FindUserOrder(ctx context.Context, id uint64) (*dto.UserOrderDTO, error) {
	return s.userOrderRepository.FindUserOrder(ctx, id)
}

func (s *UserOrderService) CreateUserOrder(ctx context.Context, payload dto.CreateUserOrderDTO) (*dto.UserOrderDTO, error) {
	res, err := s.userOrderRepository.CreateUserOrder(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании заказа пользователя", zap.Error(err))
		return nil, err
	}
	s.logger.Info("заказ пользователя создан", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *UserOrderService) UpdateUserOrder(ctx context.Context, id uint64, payload dto.UpdateUserOrderDTO) (*dto.UserOrderDTO, error) {
	res, err := s.userOrderRepository.UpdateUserOrder(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении заказа пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *UserOrderService) DeleteUserOrder(ctx context.Context, id uint64) error {
	return s.userOrderRepository.DeleteUserOrder(ctx, id)
}
