package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentConditionServiceInterface interface {
	GetEquipmentConditions(ctx context.Context) ([]dto.EquipmentConditionDTO, error)
	FindEquipmentCondition(ctx context.Context, id uint64) (*dto.EquipmentConditionDTO, error)
	CreateEquipmentCondition(ctx context.Context, payload dto.CreateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error)
	UpdateEquipmentCondition(ctx context.Context, id uint64, payload dto.UpdateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error)
	DeleteEquipmentCondition(ctx context.Context, id uint64) error
}

type EquipmentConditionService struct {
	equipmentConditionRepository repositories.EquipmentConditionRepositoryInterface
	logger                       *zap.Logger
}

func NewEquipmentConditionService(equipmentConditionRepository repositories.EquipmentConditionRepositoryInterface, logger *zap.Logger) *EquipmentConditionService {
	return &EquipmentConditionService{equipmentConditionRepository: equipmentConditionRepository, logger: logger}
}

func (s *EquipmentConditionService) GetEquipmentConditions(ctx context.Context) ([]dto.EquipmentConditionDTO, error) {
	return s.equipmentConditionRepository.GetEquipmentConditions(ctx)
}

func (s *EquipmentConditionService) FindEquipmentCondition(ctx context.Context, id uint64) (*dto.EquipmentConditionDTO, error) {
	return s.equipmentConditionRepository.FindEquipmentCondition(ctx, id)
}

func (s *EquipmentConditionService) CreateEquipmentCondition(ctx context.Context, payload dto.CreateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error) {
	res, err := s.equipmentConditionRepository.CreateEquipmentCondition(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании состояния оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("состояние оборудования создано", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *EquipmentConditionService) UpdateEquipmentCondition(ctx context.Context, id uint64, payload dto.UpdateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error) {
	res, err := s.equipmentConditionRepository.UpdateEquipmentCondition(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении состояния оборудования", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *EquipmentConditionService) DeleteEquipmentCondition(ctx context.Context, id uint64) error {
	return s.equipmentConditionRepository.DeleteEquipmentCondition(ctx, id)
}
