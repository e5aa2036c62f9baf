package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type EquipmentRepairServiceInterface interface {
	GetEquipmentRepairs(ctx context.Context) ([]dto.EquipmentRepairDTO, error)
	FindEquipmentRepair(ctx context.Context, id uint64) (*dto.EquipmentRepairDTO, error)
	CreateEquipmentRepair(ctx context.Context, payload dto.CreateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error)
	UpdateEquipmentRepair(ctx context.Context, id uint64, payload dto.UpdateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error)
	DeleteEquipmentRepair(ctx context.Context, id uint64) error
}

type EquipmentRepairService struct {
	equipmentRepairRepository repositories.EquipmentRepairRepositoryInterface
	logger                    *zap.Logger
}

func NewEquipmentRepairService(equipmentRepairRepository repositories.EquipmentRepairRepositoryInterface, logger *zap.Logger) *EquipmentRepairService {
	return &EquipmentRepairService{equipmentRepairRepository: equipmentRepairRepository, logger: logger}
}

func (s *EquipmentRepairService) GetEquipmentRepairs(ctx context.Context) ([]dto.EquipmentRepairDTO, error) {
	return s.equipmentRepairRepository.GetEquipmentRepairs(ctx)
}

func (s *EquipmentRepairService) FindEquipmentRepair(ctx context.Context, id uint64) (*dto.EquipmentRepairDTO, error) {
	return s.equipmentRepairRepository.FindEquipmentRepair(ctx, id)
}

func (s *EquipmentRepairService) CreateEquipmentRepair(ctx context.Context, payload dto.CreateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error) {
	res, err := s.equipmentRepairRepository.CreateEquipmentRepair(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании записи о ремонте", zap.Error(err))
		return nil, err
	}
	s.logger.Info("запись о ремонте создана", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *EquipmentRepairService) UpdateEquipmentRepair(ctx context.Context, id uint64, payload dto.UpdateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error) {
	res, err := s.equipmentRepairRepository.UpdateEquipmentRepair(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении записи о ремонте", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *EquipmentRepairService) DeleteEquipmentRepair(ctx context.Context, id uint64) error {
	return s.equipmentRepairRepository.DeleteEquipmentRepair(ctx, id)
}
