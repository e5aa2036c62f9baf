package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipmentRepository: equipmentRepository, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	return s.equipmentRepository.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	res, err := s.equipmentRepository.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("оборудование создано", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	res, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении оборудования", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}
