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
	equipmentTypeTable  = "equipment_types"
	equipmentTypeFields = "id, name"
)

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
	FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type equipmentTypeRepository struct{ storage *pgxpool.Pool }

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &equipmentTypeRepository{storage: storage}
}

func (r *equipmentTypeRepository) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", equipmentTypeFields, equipmentTypeTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]dto.EquipmentTypeDTO, 0)
	for rows.Next() {
		var equipmentType dto.EquipmentTypeDTO
		if err := rows.Scan(&equipmentType.ID, &equipmentType.Name); err != nil {
			return nil, err
		}
		types = append(types, equipmentType)
	}
	return types, rows.Err()
}

func (r *equipmentTypeRepository) FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentTypeFields, equipmentTypeTable)

	var equipmentType dto.EquipmentTypeDTO
	err := r.storage.QueryRow(ctx, query, id).Scan(&equipmentType.ID, &equipmentType.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &equipmentType, nil
}

func (r *equipmentTypeRepository) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING %s", equipmentTypeTable, equipmentTypeFields)

	var equipmentType dto.EquipmentTypeDTO
	err := r.storage.QueryRow(ctx, query, payload.Name).Scan(&equipmentType.ID, &equipmentType.Name)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return &equipmentType, nil
}

func (r *equipmentTypeRepository) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindEquipmentType(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		equipmentTypeTable, strings.Join(setClauses, ", "), argId, equipmentTypeFields)
	args = append(args, id)

	var equipmentType dto.EquipmentTypeDTO
	err := r.storage.QueryRow(ctx, query, args...).Scan(&equipmentType.ID, &equipmentType.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return &equipmentType, nil
}

func (r *equipmentTypeRepository) DeleteEquipmentType(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTypeTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
