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
	workerPositionTable  = "worker_positions"
	workerPositionFields = "id, name"
)

type WorkerPositionRepositoryInterface interface {
	GetWorkerPositions(ctx context.Context) ([]dto.WorkerPositionDTO, error)
	FindWorkerPosition(ctx context.Context, id uint64) (*dto.WorkerPositionDTO, error)
	CreateWorkerPosition(ctx context.Context, payload dto.CreateWorkerPositionDTO) (*dto.WorkerPositionDTO, error)
	UpdateWorkerPosition(ctx context.Context, id uint64, payload dto.UpdateWorkerPositionDTO) (*dto.WorkerPositionDTO, error)
	DeleteWorkerPosition(ctx context.Context, id uint64) error
}

type workerPositionRepository struct{ storage *pgxpool.Pool }

func NewWorkerPositionRepository(storage *pgxpool.Pool) WorkerPositionRepositoryInterface {
	return &workerPositionRepository{storage: storage}
}

func (r *workerPositionRepository) GetWorkerPositions(ctx context.Context) ([]dto.WorkerPositionDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", workerPositionFields, workerPositionTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]dto.WorkerPositionDTO, 0)
	for rows.Next() {
		var position dto.WorkerPositionDTO
		if err := rows.Scan(&position.ID, &position.Name); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (r *workerPositionRepository) FindWorkerPosition(ctx context.Context, id uint64) (*dto.WorkerPositionDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", workerPositionFields, workerPositionTable)

	var position dto.WorkerPositionDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&position.ID, &position.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &position, nil
}

func (r *workerPositionRepository) CreateWorkerPosition(ctx context.Context, payload dto.CreateWorkerPositionDTO) (*dto.WorkerPositionDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING %s", workerPositionTable, workerPositionFields)

	var position dto.WorkerPositionDTO
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&position.ID, &position.Name)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return &position, nil
}

func (r *workerPositionRepository) UpdateWorkerPosition(ctx context.Context, id uint64, payload dto.UpdateWorkerPositionDTO) (*dto.WorkerPositionDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindWorkerPosition(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		workerPositionTable, strings.Join(setClauses, ", "), argId, workerPositionFields)
	args = append(args, id)

	var position dto.WorkerPositionDTO
	err := r.storage.QueryRow(ctx, query, args...).Scan(&position.ID, &position.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return &position, nil
}

func (r *workerPositionRepository) DeleteWorkerPosition(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", workerPositionTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
