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

const timeLayout = "2006-01-02 15:04:05"

type dbUserOrder struct {
	ID          uint64
	TimeOfOrder time.Time
	User        dbUser
	Equipment   dbEquipment
}

func (db *dbUserOrder) ToDTO() dto.UserOrderDTO {
	userDTO := db.User.ToDTO()
	equipmentDTO := db.Equipment.ToDTO()
	return dto.UserOrderDTO{
		ID:          db.ID,
		TimeOfOrder: db.TimeOfOrder.UTC().Format(timeLayout),
		User:        &userDTO,
		Equipment:   &equipmentDTO,
	}
}

type UserOrderRepositoryInterface interface {
	GetUserOrders(ctx context.Context) ([]dto.UserOrderDTO, error)
	FindUserOrder(ctx context.Context, id uint64) (*dto.UserOrderDTO, error)
	CreateUserOrder(ctx context.Context, payload dto.CreateUserOrderDTO) (*dto.UserOrderDTO, error)
	UpdateUserOrder(ctx context.Context, id uint64, payload dto.UpdateUserOrderDTO) (*dto.UserOrderDTO, error)
	DeleteUserOrder(ctx context.Context, id uint64) error
}

type userOrderRepository struct{ storage *pgxpool.Pool }

func NewUserOrderRepository(storage *pgxpool.Pool) UserOrderRepositoryInterface {
	return &userOrderRepository{storage: storage}
}

// selectBuilder тянет заказ вместе со всеми вложенными объектами одним
// запросом: пользователь с командой, оборудование с типом и состоянием.
func (r *userOrderRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		"uo.id", "uo.time_of_order",
		"u.id", "u.name", "u.surname", "u.email", "t.id", "t.name",
		"e.id", "e.model", "e.serial_number", "et.id", "et.name", "ec.id", "ec.name",
	).
		From("user_orders uo").
		Join("users u ON u.id = uo.user_id").
		LeftJoin("teams t ON t.id = u.team_id").
		Join("equipments e ON e.id = uo.equipment_id").
		Join("equipment_types et ON et.id = e.equipment_type_id").
		Join("equipment_conditions ec ON ec.id = e.equipment_condition_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *userOrderRepository) scanRow(row pgx.Row) (*dbUserOrder, error) {
	var dbRow dbUserOrder
	err := row.Scan(
		&dbRow.ID, &dbRow.TimeOfOrder,
		&dbRow.User.ID, &dbRow.User.Name, &dbRow.User.Surname, &dbRow.User.Email, &dbRow.User.TeamID, &dbRow.User.TeamName,
		&dbRow.Equipment.ID, &dbRow.Equipment.Model, &dbRow.Equipment.SerialNumber,
		&dbRow.Equipment.TypeID, &dbRow.Equipment.TypeName, &dbRow.Equipment.ConditionID, &dbRow.Equipment.ConditionName,
	)
	if err != nil {
		return nil, err
	}
	return &dbRow, nil
}

func (r *userOrderRepository) GetUserOrders(ctx context.Context) ([]dto.UserOrderDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("uo.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]dto.UserOrderDTO, 0)
	for rows.Next() {
		dbRow, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, dbRow.ToDTO())
	}
	return orders, rows.Err()
}

func (r *userOrderRepository) FindUserOrder(ctx context.Context, id uint64) (*dto.UserOrderDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"uo.id": id}).ToSql()
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

func (r *userOrderRepository) CreateUserOrder(ctx context.Context, payload dto.CreateUserOrderDTO) (*dto.UserOrderDTO, error) {
	// NULL в time_of_order заменяется моментом создания.
	query := `INSERT INTO user_orders (time_of_order, user_id, equipment_id)
		VALUES (COALESCE($1, NOW()), $2, $3) RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.TimeOfOrder, payload.UserID, payload.EquipmentID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindUserOrder(ctx, id)
}

func (r *userOrderRepository) UpdateUserOrder(ctx context.Context, id uint64, payload dto.UpdateUserOrderDTO) (*dto.UserOrderDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.TimeOfOrder != nil {
		setClauses = append(setClauses, fmt.Sprintf("time_of_order = $%d", argId))
		args = append(args, *payload.TimeOfOrder)
		argId++
	}
	if payload.UserID != nil {
		setClauses = append(setClauses, fmt.Sprintf("user_id = $%d", argId))
		args = append(args, *payload.UserID)
		argId++
	}
	if payload.EquipmentID != nil {
		setClauses = append(setClauses, fmt.Sprintf("equipment_id = $%d", argId))
		args = append(args, *payload.EquipmentID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindUserOrder(ctx, id)
	}

	query := fmt.Sprintf("UPDATE user_orders SET %s WHERE id = $%d RETURNING id",
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
	return r.FindUserOrder(ctx, updatedID)
}

func (r *userOrderRepository) DeleteUserOrder(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM user_orders WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
