package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workshop-system/internal/dto"
	apperrors "workshop-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbEquipment struct {
	ID            uint64
	Model         string
	SerialNumber  string
	TypeID        uint64
	TypeName      string
	ConditionID   uint64
	ConditionName string
}

func (db *dbEquipment) ToDTO() dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:           db.ID,
		Model:        db.Model,
		SerialNumber: db.SerialNumber,
		EquipmentType: &dto.EquipmentTypeDTO{
			ID:   db.TypeID,
			Name: db.TypeName,
		},
		EquipmentCondition: &dto.EquipmentConditionDTO{
			ID:   db.ConditionID,
			Name: db.ConditionName,
		},
	}
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type equipmentRepository struct{ storage *pgxpool.Pool }

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func (r *equipmentRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select("e.id", "e.model", "e.serial_number", "et.id", "et.name", "ec.id", "ec.name").
		From("equipments e").
		Join("equipment_types et ON et.id = e.equipment_type_id").
		Join("equipment_conditions ec ON ec.id = e.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *equipmentRepository) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("e.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		var dbRow dbEquipment
		if err := rows.Scan(&dbRow.ID, &dbRow.Model, &dbRow.SerialNumber, &dbRow.TypeID, &dbRow.TypeName, &dbRow.ConditionID, &dbRow.ConditionName); err != nil {
			return nil, err
		}
		equipments = append(equipments, dbRow.ToDTO())
	}
	return equipments, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var dbRow dbEquipment
	err = r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Model, &dbRow.SerialNumber, &dbRow.TypeID, &dbRow.TypeName, &dbRow.ConditionID, &dbRow.ConditionName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	equipmentDTO := dbRow.ToDTO()
	return &equipmentDTO, nil
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := `INSERT INTO equipments (model, serial_number, equipment_type_id, equipment_condition_id)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.Model, payload.SerialNumber, payload.EquipmentTypeID, payload.EquipmentConditionID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindEquipment(ctx, id)
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Model != nil {
		setClauses = append(setClauses, fmt.Sprintf("model = $%d", argId))
		args = append(args, *payload.Model)
		argId++
	}
	if payload.SerialNumber != nil {
		setClauses = append(setClauses, fmt.Sprintf("serial_number = $%d", argId))
		args = append(args, *payload.SerialNumber)
		argId++
	}
	if payload.EquipmentTypeID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_type_id = $%d", argId))
		args = append(args, *payload.EquipmentTypeID)
		argId++
	}
	if payload.EquipmentConditionID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_condition_id = $%d", argId))
		args = append(args, *payload.EquipmentConditionID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindEquipment(ctx, id)
	}

	query := fmt.Sprintf("UPDATE equipments SET %s WHERE id = $%d RETURNING id",
		strings.Join(setClauses, ", "), argId)
	args = append(args, id)

	var updatedID uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return r.FindEquipment(ctx, updatedID)
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipments WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
