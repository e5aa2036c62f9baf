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

type dbLaserCutter struct {
	ID            uint64
	Model         string
	SerialNumber  string
	ConditionID   uint64
	ConditionName string
}

func (db *dbLaserCutter) ToDTO() dto.LaserCutterDTO {
	return dto.LaserCutterDTO{
		ID:           db.ID,
		Model:        db.Model,
		SerialNumber: db.SerialNumber,
		EquipmentCondition: &dto.EquipmentConditionDTO{
			ID:   db.ConditionID,
			Name: db.ConditionName,
		},
	}
}

type LaserCutterRepositoryInterface interface {
	GetLaserCutters(ctx context.Context) ([]dto.LaserCutterDTO, error)
	FindLaserCutter(ctx context.Context, id uint64) (*dto.LaserCutterDTO, error)
	CreateLaserCutter(ctx context.Context, payload dto.CreateLaserCutterDTO) (*dto.LaserCutterDTO, error)
	UpdateLaserCutter(ctx context.Context, id uint64, payload dto.UpdateLaserCutterDTO) (*dto.LaserCutterDTO, error)
	DeleteLaserCutter(ctx context.Context, id uint64) error
}

type laserCutterRepository struct{ storage *pgxpool.Pool }

func NewLaserCutterRepository(storage *pgxpool.Pool) LaserCutterRepositoryInterface {
	return &laserCutterRepository{storage: storage}
}

func (r *laserCutterRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select("lc.id", "lc.model", "lc.serial_number", "ec.id", "ec.name").
		From("laser_cutters lc").
		Join("equipment_conditions ec ON ec.id = lc.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *laserCutterRepository) GetLaserCutters(ctx context.Context) ([]dto.LaserCutterDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("lc.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cutters := make([]dto.LaserCutterDTO, 0)
	for rows.Next() {
		var dbRow dbLaserCutter
		if err := rows.Scan(&dbRow.ID, &dbRow.Model, &dbRow.SerialNumber, &dbRow.ConditionID, &dbRow.ConditionName); err != nil {
			return nil, err
		}
		cutters = append(cutters, dbRow.ToDTO())
	}
	return cutters, rows.Err()
}

func (r *laserCutterRepository) FindLaserCutter(ctx context.Context, id uint64) (*dto.LaserCutterDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"lc.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var dbRow dbLaserCutter
	err = r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Model, &dbRow.SerialNumber, &dbRow.ConditionID, &dbRow.ConditionName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	cutterDTO := dbRow.ToDTO()
	return &cutterDTO, nil
}

func (r *laserCutterRepository) CreateLaserCutter(ctx context.Context, payload dto.CreateLaserCutterDTO) (*dto.LaserCutterDTO, error) {
	query := `INSERT INTO laser_cutters (model, serial_number, equipment_condition_id)
		VALUES ($1, $2, $3) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.Model, payload.SerialNumber, payload.EquipmentConditionID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindLaserCutter(ctx, id)
}

func (r *laserCutterRepository) UpdateLaserCutter(ctx context.Context, id uint64, payload dto.UpdateLaserCutterDTO) (*dto.LaserCutterDTO, error) {
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
	if payload.EquipmentConditionID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_condition_id = $%d", argId))
		args = append(args, *payload.EquipmentConditionID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindLaserCutter(ctx, id)
	}

	query := fmt.Sprintf("UPDATE laser_cutters SET %s WHERE id = $%d RETURNING id",
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
	return r.FindLaserCutter(ctx, updatedID)
}

func (r *laserCutterRepository) DeleteLaserCutter(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM laser_cutters WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
