package services

import (
	"context"

	"workshop-system/internal/dto"
	"workshop-system/internal/repositories"

	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

type TeamService struct {
	teamRepository repositories.TeamRepositoryInterface
	logger         *zap.Logger
}

func NewTeamService(teamRepository repositories.TeamRepositoryInterface, logger *zap.Logger) *TeamService {
	return &TeamService{teamRepository: teamRepository, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return s.teamRepository.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	return s.teamRepository.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	res, err := s.teamRepository.CreateTeam(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании бригады", zap.Error(err))
		return nil, err
	}
	s.logger.Info("бригада создана", zap.Uint64("id", res.ID))
	return res, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	res, err := s.teamRepository.UpdateTeam(ctx, id, payload)
	if err != nil {
		s.logger.Error("ошибка при обновлении бригады", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	return s.teamRepository.DeleteTeam(ctx, id)
}
