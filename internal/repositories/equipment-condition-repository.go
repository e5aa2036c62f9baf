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
	equipmentConditionTable  = "equipment_conditions"
	equipmentConditionFields = "id, name"
)

type EquipmentConditionRepositoryInterface interface {
	GetEquipmentConditions(ctx context.Context) ([]dto.EquipmentConditionDTO, error)
	FindEquipmentCondition(ctx context.Context, id uint64) (*dto.EquipmentConditionDTO, error)
	CreateEquipmentCondition(ctx context.Context, payload dto.CreateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error)
	UpdateEquipmentCondition(ctx context.Context, id uint64, payload dto.UpdateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error)
	DeleteEquipmentCondition(ctx context.Context, id uint64) error
}

type equipmentConditionRepository struct{ storage *pgxpool.Pool }

func NewEquipmentConditionRepository(storage *pgxpool.Pool) EquipmentConditionRepositoryInterface {
	return &equipmentConditionRepository{storage: storage}
}

func (r *equipmentConditionRepository) GetEquipmentConditions(ctx context.Context) ([]dto.EquipmentConditionDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", equipmentConditionFields, equipmentConditionTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conditions := make([]dto.EquipmentConditionDTO, 0)
	for rows.Next() {
		var condition dto.EquipmentConditionDTO
		if err := rows.Scan(&condition.ID, &condition.Name); err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	return conditions, rows.Err()
}

func (r *equipmentConditionRepository) FindEquipmentCondition(ctx context.Context, id uint64) (*dto.EquipmentConditionDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentConditionFields, equipmentConditionTable)

	var condition dto.EquipmentConditionDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&condition.ID, &condition.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &condition, nil
}

func (r *equipmentConditionRepository) CreateEquipmentCondition(ctx context.Context, payload dto.CreateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING %s", equipmentConditionTable, equipmentConditionFields)

	var condition dto.EquipmentConditionDTO
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&condition.ID, &condition.Name)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return &condition, nil
}

func (r *equipmentConditionRepository) UpdateEquipmentCondition(ctx context.Context, id uint64, payload dto.UpdateEquipmentConditionDTO) (*dto.EquipmentConditionDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindEquipmentCondition(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		equipmentConditionTable, strings.Join(setClauses, ", "), argId, equipmentConditionFields)
	args = append(args, id)

	var condition dto.EquipmentConditionDTO
	err := r.storage.QueryRow(ctx, query, args...).Scan(&condition.ID, &condition.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return &condition, nil
}

func (r *equipmentConditionRepository) DeleteEquipmentCondition(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentConditionTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
