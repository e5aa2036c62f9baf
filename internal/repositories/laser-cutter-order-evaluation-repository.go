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
	evaluationTable  = "laser_cutter_order_evaluations"
	evaluationFields = "id, order_id, quality_score"
)

type LaserCutterOrderEvaluationRepositoryInterface interface {
	GetEvaluations(ctx context.Context) ([]dto.LaserCutterOrderEvaluationDTO, error)
	FindEvaluation(ctx context.Context, id uint64) (*dto.LaserCutterOrderEvaluationDTO, error)
	CreateEvaluation(ctx context.Context, payload dto.CreateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error)
	UpdateEvaluation(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error)
	DeleteEvaluation(ctx context.Context, id uint64) error
}

type laserCutterOrderEvaluationRepository struct{ storage *pgxpool.Pool }

func NewLaserCutterOrderEvaluationRepository(storage *pgxpool.Pool) LaserCutterOrderEvaluationRepositoryInterface {
	return &laserCutterOrderEvaluationRepository{storage: storage}
}

func (r *laserCutterOrderEvaluationRepository) GetEvaluations(ctx context.Context) ([]dto.LaserCutterOrderEvaluationDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", evaluationFields, evaluationTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evaluations := make([]dto.LaserCutterOrderEvaluationDTO, 0)
	for rows.Next() {
		var evaluation dto.LaserCutterOrderEvaluationDTO
		if err := rows.Scan(&evaluation.ID, &evaluation.OrderID, &evaluation.QualityScore); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evaluation)
	}
	return evaluations, rows.Err()
}

func (r *laserCutterOrderEvaluationRepository) FindEvaluation(ctx context.Context, id uint64) (*dto.LaserCutterOrderEvaluationDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", evaluationFields, evaluationTable)

	var evaluation dto.LaserCutterOrderEvaluationDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&evaluation.ID, &evaluation.OrderID, &evaluation.QualityScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &evaluation, nil
}

func (r *laserCutterOrderEvaluationRepository) CreateEvaluation(ctx context.Context, payload dto.CreateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (order_id, quality_score) VALUES ($1, $2) RETURNING %s", evaluationTable, evaluationFields)

	var evaluation dto.LaserCutterOrderEvaluationDTO
	err := r.storage.QueryRow(ctx, query, payload.OrderID, payload.QualityScore).Scan(&evaluation.ID, &evaluation.OrderID, &evaluation.QualityScore)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return &evaluation, nil
}

func (r *laserCutterOrderEvaluationRepository) UpdateEvaluation(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderEvaluationDTO) (*dto.LaserCutterOrderEvaluationDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.OrderID != nil {
		setClauses = append(setClauses, fmt.Sprintf("order_id = $%d", argId))
		args = append(args, *payload.OrderID)
		argId++
	}
	if payload.QualityScore != nil {
		setClauses = append(setClauses, fmt.Sprintf("quality_score = $%d", argId))
		args = append(args, *payload.QualityScore)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindEvaluation(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		evaluationTable, strings.Join(setClauses, ", "), argId, evaluationFields)
	args = append(args, id)

	var evaluation dto.LaserCutterOrderEvaluationDTO
	err := r.storage.QueryRow(ctx, query, args...).Scan(&evaluation.ID, &evaluation.OrderID, &evaluation.QualityScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return &evaluation, nil
}

func (r *laserCutterOrderEvaluationRepository) DeleteEvaluation(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", evaluationTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
