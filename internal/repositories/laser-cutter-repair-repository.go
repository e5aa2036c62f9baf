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

type dbLaserCutterRepair struct {
	ID           uint64
	DateOfRepair time.Time
	Worker       dbWorker
	LaserCutter  dbLaserCutter
}

func (db *dbLaserCutterRepair) ToDTO() dto.LaserCutterRepairDTO {
	workerDTO := db.Worker.ToDTO()
	cutterDTO := db.LaserCutter.ToDTO()
	return dto.LaserCutterRepairDTO{
		ID:           db.ID,
		DateOfRepair: db.DateOfRepair.Format(dateLayout),
		Worker:       &workerDTO,
		LaserCutter:  &cutterDTO,
	}
}

type LaserCutterRepairRepositoryInterface interface {
	GetLaserCutterRepairs(ctx context.Context) ([]dto.LaserCutterRepairDTO, error)
	FindLaserCutterRepair(ctx context.Context, id uint64) (*dto.LaserCutterRepairDTO, error)
	CreateLaserCutterRepair(ctx context.Context, payload dto.CreateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error)
	UpdateLaserCutterRepair(ctx context.Context, id uint64, payload dto.UpdateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error)
	DeleteLaserCutterRepair(ctx context.Context, id uint64) error
}

type laserCutterRepairRepository struct{ storage *pgxpool.Pool }

func NewLaserCutterRepairRepository(storage *pgxpool.Pool) LaserCutterRepairRepositoryInterface {
	return &laserCutterRepairRepository{storage: storage}
}

func (r *laserCutterRepairRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"lcr.id", "lcr.date_of_repair",
		"w.id", "w.name", "w.surname", "w.email", "w.phone_number", "w.address", "wp.id", "wp.name",
		"lc.id", "lc.model", "lc.serial_number", "ec.id", "ec.name",
	).
		From("laser_cutter_repairs lcr").
		Join("workers w ON w.id = lcr.worker_id").
		Join("worker_positions wp ON wp.id = w.worker_position_id").
		Join("laser_cutters lc ON lc.id = lcr.laser_cutter_id").
		Join("equipment_conditions ec ON ec.id = lc.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *laserCutterRepairRepository) scanRow(row pgx.Row) (*dbLaserCutterRepair, error) {
	var dbRow dbLaserCutterRepair
	err := row.Scan(
		&dbRow.ID, &dbRow.DateOfRepair,
		&dbRow.Worker.ID, &dbRow.Worker.Name, &dbRow.Worker.Surname, &dbRow.Worker.Email,
		&dbRow.Worker.PhoneNumber, &dbRow.Worker.Address, &dbRow.Worker.PositionID, &dbRow.Worker.PositionName,
		&dbRow.LaserCutter.ID, &dbRow.LaserCutter.Model, &dbRow.LaserCutter.SerialNumber,
		&dbRow.LaserCutter.ConditionID, &dbRow.LaserCutter.ConditionName,
	)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *laserCutterRepairRepository) GetLaserCutterRepairs(ctx context.Context) ([]dto.LaserCutterRepairDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("lcr.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repairs := make([]dto.LaserCutterRepairDTO, 0)
	for rows.Next() {
		dbRow, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, dbRow.ToDTO())
	}
	return repairs, rows.Err()
}

func (r *laserCutterRepairRepository) FindLaserCutterRepair(ctx context.Context, id uint64) (*dto.LaserCutterRepairDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"lcr.id": id}).ToSql()
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

func (r *laserCutterRepairRepository) CreateLaserCutterRepair(ctx context.Context, payload dto.CreateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error) {
	query := `INSERT INTO laser_cutter_repairs (date_of_repair, worker_id, laser_cutter_id)
		VALUES ($1, $2, $3) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.DateOfRepair, payload.WorkerID, payload.LaserCutterID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindLaserCutterRepair(ctx, id)
}

func (r *laserCutterRepairRepository) UpdateLaserCutterRepair(ctx context.Context, id uint64, payload dto.UpdateLaserCutterRepairDTO) (*dto.LaserCutterRepairDTO, error) {
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
	if payload.LaserCutterID != nil {
		setClauses = append(setClauses, fmt.Sprintf("laser_cutter_id = $%d", argId))
		args = append(args, *payload.LaserCutterID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindLaserCutterRepair(ctx, id)
	}

	query := fmt.Sprintf("UPDATE laser_cutter_repairs SET %s WHERE id = $%d RETURNING id",
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
	return r.FindLaserCutterRepair(ctx, updatedID)
}

func (r *laserCutterRepairRepository) DeleteLaserCutterRepair(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM laser_cutter_repairs WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
