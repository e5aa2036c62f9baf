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

type dbLaserCutterOrder struct {
	ID          uint64
	TimeOfStart time.Time
	TimeOfEnd   time.Time
	User        dbUser
	LaserCutter dbLaserCutter
}

func (db *dbLaserCutterOrder) ToDTO() dto.LaserCutterOrderDTO {
	userDTO := db.User.ToDTO()
	cutterDTO := db.LaserCutter.ToDTO()
	return dto.LaserCutterOrderDTO{
		ID:          db.ID,
		TimeOfStart: db.TimeOfStart.UTC().Format(timeLayout),
		TimeOfEnd:   db.TimeOfEnd.UTC().Format(timeLayout),
		User:        &userDTO,
		LaserCutter: &cutterDTO,
	}
}

type LaserCutterOrderRepositoryInterface interface {
	GetLaserCutterOrders(ctx context.Context) ([]dto.LaserCutterOrderDTO, error)
	FindLaserCutterOrder(ctx context.Context, id uint64) (*dto.LaserCutterOrderDTO, error)
	CreateLaserCutterOrder(ctx context.Context, payload dto.CreateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error)
	UpdateLaserCutterOrder(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error)
	DeleteLaserCutterOrder(ctx context.Context, id uint64) error
}

type laserCutterOrderRepository struct{ storage *pgxpool.Pool }

func NewLaserCutterOrderRepository(storage *pgxpool.Pool) LaserCutterOrderRepositoryInterface {
	return &laserCutterOrderRepository{storage: storage}
}

func (r *laserCutterOrderRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"lco.id", "lco.time_of_start", "lco.time_of_end",
		"u.id", "u.name", "u.surname", "u.email", "t.id", "t.name",
		"lc.id", "lc.model", "lc.serial_number", "ec.id", "ec.name",
	).
		From("laser_cutter_orders lco").
		Join("users u ON u.id = lco.user_id").
		LeftJoin("teams t ON t.id = u.team_id").
		Join("laser_cutters lc ON lc.id = lco.laser_cutter_id").
		Join("equipment_conditions ec ON ec.id = lc.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *laserCutterOrderRepository) scanRow(row pgx.Row) (*dbLaserCutterOrder, error) {
	var dbRow dbLaserCutterOrder
	err := row.Scan(
		&dbRow.ID, &dbRow.TimeOfStart, &dbRow.TimeOfEnd,
		&dbRow.User.ID, &dbRow.User.Name, &dbRow.User.Surname, &dbRow.User.Email, &dbRow.User.TeamID, &dbRow.User.TeamName,
		&dbRow.LaserCutter.ID, &dbRow.LaserCutter.Model, &dbRow.LaserCutter.SerialNumber,
		&dbRow.LaserCutter.ConditionID, &dbRow.LaserCutter.ConditionName,
	)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *laserCutterOrderRepository) GetLaserCutterOrders(ctx context.Context) ([]dto.LaserCutterOrderDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("lco.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]dto.LaserCutterOrderDTO, 0)
	for rows.Next() {
		dbRow, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, dbRow.ToDTO())
	}
	return orders, rows.Err()
}

func (r *laserCutterOrderRepository) FindLaserCutterOrder(ctx context.Context, id uint64) (*dto.LaserCutterOrderDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"lco.id": id}).ToSql()
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
	orderDTO := dbRow.ToDTO()
	return &orderDTO, nil
}

func (r *laserCutterOrderRepository) CreateLaserCutterOrder(ctx context.Context, payload dto.CreateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error) {
	query := `INSERT INTO laser_cutter_orders (time_of_start, time_of_end, user_id, laser_cutter_id)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.TimeOfStart, payload.TimeOfEnd, payload.UserID, payload.LaserCutterID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindLaserCutterOrder(ctx, id)
}

func (r *laserCutterOrderRepository) UpdateLaserCutterOrder(ctx context.Context, id uint64, payload dto.UpdateLaserCutterOrderDTO) (*dto.LaserCutterOrderDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.TimeOfStart != nil {
		setClauses = append(setClauses, fmt.Sprintf("time_of_start = $%d", argId))
		args = append(args, *payload.TimeOfStart)
		argId++
	}
	if payload.TimeOfEnd != nil {
		setClauses = append(setClauses, fmt.Sprintf("time_of_end = $%d", argId))
		args = append(args, *payload.TimeOfEnd)
		argId++
	}
	if payload.UserID != nil {
		setClauses = append(setClauses, fmt.Sprintf("user_id = $%d", argId))
		args = append(args, *payload.UserID)
		argId++
	}
	if payload.LaserCutterID != nil {
		setClauses = append(setClauses, fmt.Sprintf("laser_cutter_id = $%d", argId))
		args = append(args, *payload.LaserCutterID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindLaserCutterOrder(ctx, id)
	}

	query := fmt.Sprintf("UPDATE laser_cutter_orders SET %s WHERE id = $%d RETURNING id",
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
	return r.FindLaserCutterOrder(ctx, updatedID)
}

func (r *laserCutterOrderRepository) DeleteLaserCutterOrder(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM laser_cutter_orders WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
