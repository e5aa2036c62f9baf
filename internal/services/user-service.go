package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	return s.userRepository.GetUsers(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	return s.userRepository.FindUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	res, err := s.userRepository.CreateUser(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании пользователя", zap.Error(err))
		return nil, err
	}
	s.logger.Info("пользователь создан", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	res, err := s.userRepository.UpdateUser(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.DeleteUser(ctx, id)
}
