package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workshop-system/internal/dto"
	apperrors "workshop-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	teamTable  = "teams"
	teamFields = "id, name"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

type teamRepository struct{ storage *pgxpool.Pool }

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

func (r *teamRepository) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", teamFields, teamTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	for rows.Next() {
		var team dto.TeamDTO
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *teamRepository) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", teamFields, teamTable)

	var team dto.TeamDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING %s", teamTable, teamFields)

	var team dto.TeamDTO
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&team.ID, &team.Name)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return &team, nil
}

func (r *teamRepository) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindTeam(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		teamTable, strings.Join(setClauses, ", "), argId, teamFields)
	args = append(args, id)

	var team dto.TeamDTO
	err := r.storage.QueryRow(ctx, query, args...).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return &team, nil
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", teamTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
