package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop-system/internal/dto"
	apperrors "workshop-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

type dbEquipmentRepair struct {
	ID           uint64
	DateOfRepair time.Time
	Worker       dbWorker
	Equipment    dbEquipment
}

func (db *dbEquipmentRepair) ToDTO() dto.EquipmentRepairDTO {
	workerDTO := db.Worker.ToDTO()
	equipmentDTO := db.Equipment.ToDTO()
	return dto.EquipmentRepairDTO{
		ID:           db.ID,
		DateOfRepair: db.DateOfRepair.Format(dateLayout),
		Worker:       &workerDTO,
		Equipment:    &equipmentDTO,
	}
}

type EquipmentRepairRepositoryInterface interface {
	GetEquipmentRepairs(ctx context.Context) ([]dto.EquipmentRepairDTO, error)
	FindEquipmentRepair(ctx context.Context, id uint64) (*dto.EquipmentRepairDTO, error)
	CreateEquipmentRepair(ctx context.Context, payload dto.CreateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error)
	UpdateEquipmentRepair(ctx context.Context, id uint64, payload dto.UpdateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error)
	DeleteEquipmentRepair(ctx context.Context, id uint64) error
}

type equipmentRepairRepository struct{ storage *pgxpool.Pool }

func NewEquipmentRepairRepository(storage *pgxpool.Pool) EquipmentRepairRepositoryInterface {
	return &equipmentRepairRepository{storage: storage}
}

func (r *equipmentRepairRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"er.id", "er.date_of_repair",
		"w.id", "w.name", "w.surname", "w.email", "w.phone_number", "w.address", "wp.id", "wp.name",
		"e.id", "e.model", "e.serial_number", "et.id", "et.name", "ec.id", "ec.name",
	).
		From("equipment_repairs er").
		Join("workers w ON w.id = er.worker_id").
		Join("worker_positions wp ON wp.id = w.worker_position_id").
		Join("equipments e ON e.id = er.equipment_id").
		Join("equipment_types et ON et.id = e.equipment_type_id").
		Join("equipment_conditions ec ON ec.id = e.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *equipmentRepairRepository) scanRow(row pgx.Row) (*dbEquipmentRepair, error) {
	var dbRow dbEquipmentRepair
	err := row.Scan(
		&dbRow.ID, &dbRow.DateOfRepair,
		&dbRow.Worker.ID, &dbRow.Worker.Name, &dbRow.Worker.Surname, &dbRow.Worker.Email,
		&dbRow.Worker.PhoneNumber, &dbRow.Worker.Address, &dbRow.Worker.PositionID, &dbRow.Worker.PositionName,
		&dbRow.Equipment.ID, &dbRow.Equipment.Model, &dbRow.Equipment.SerialNumber,
		&dbRow.Equipment.TypeID, &dbRow.Equipment.TypeName, &dbRow.Equipment.ConditionID, &dbRow.Equipment.ConditionName,
	)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *equipmentRepairRepository) GetEquipmentRepairs(ctx context.Context) ([]dto.EquipmentRepairDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("er.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repairs := make([]dto.EquipmentRepairDTO, 0)
	for rows.Next() {
		dbRow, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, dbRow.ToDTO())
	}
	return repairs, rows.Err()
}

func (r *equipmentRepairRepository) FindEquipmentRepair(ctx context.Context, id uint64) (*dto.EquipmentRepairDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"er.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	dbRow, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	repairDTO := dbRow.ToDTO()
	return &repairDTO, nil
}

func (r *equipmentRepairRepository) CreateEquipmentRepair(ctx context.Context, payload dto.CreateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error) {
	query := `INSERT INTO equipment_repairs (date_of_repair, worker_id, equipment_id)
		VALUES ($1, $2, $3) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.DateOfRepair, payload.WorkerID, payload.EquipmentID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindEquipmentRepair(ctx, id)
}

func (r *equipmentRepairRepository) UpdateEquipmentRepair(ctx context.Context, id uint64, payload dto.UpdateEquipmentRepairDTO) (*dto.EquipmentRepairDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.DateOfRepair != nil {
		setClauses = append(setClauses, fmt.Sprintf("date_of_repair = $%d", argId))
		args = append(args, *payload.DateOfRepair)
		argId++
	}
	if payload.WorkerID != nil {
		setClauses = append(setClauses, fmt.Sprintf("worker_id = $%d", argId))
		args = append(args, *payload.WorkerID)
		argId++
	}
	if payload.EquipmentID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_id = $%d", argId))
		args = append(args, *payload.EquipmentID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindEquipmentRepair(ctx, id)
	}

	query := fmt.Sprintf("UPDATE equipment_repairs SET %s WHERE id = $%d RETURNING id",
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
	return r.FindEquipmentRepair(ctx, updatedID)
}

func (r *equipmentRepairRepository) DeleteEquipmentRepair(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment_repairs WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
