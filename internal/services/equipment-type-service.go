package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentTypeServiceInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
	FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type EquipmentTypeService struct {
	equipmentTypeRepository repositories.EquipmentTypeRepositoryInterface
	logger                  *zap.Logger
}

func NewEquipmentTypeService(equipmentTypeRepository repositories.EquipmentTypeRepositoryInterface, logger *zap.Logger) *EquipmentTypeService {
	return &EquipmentTypeService{equipmentTypeRepository: equipmentTypeRepository, logger: logger}
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	return s.equipmentTypeRepository.GetEquipmentTypes(ctx)
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error) {
	return s.equipmentTypeRepository.FindEquipmentType(ctx, id)
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	res, err := s.equipmentTypeRepository.CreateEquipmentType(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании типа оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("тип оборудования создан", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	res, err := s.equipmentTypeRepository.UpdateEquipmentType(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении типа оборудования", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *EquipmentTypeService) DeleteEquipmentType(ctx context.Context, id uint64) error {
	return s.equipmentTypeRepository.DeleteEquipmentType(ctx, id)
}
