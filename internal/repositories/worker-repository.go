package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbWorker struct {
	ID           uint64
	Name         string
	Surname      string
	Email        string
	PhoneNumber  string
	Address      string
	PositionID   uint64
	PositionName string
}

func (db *dbWorker) ToDTO() dto.WorkerDTO {
	return dto.WorkerDTO{
		ID:          db.ID,
		Name:        db.Name,
		Surname:     db.Surname,
		Email:       db.Email,
		PhoneNumber: db.PhoneNumber,
		Address:     db.Address,
		WorkerPosition: &dto.WorkerPositionDTO{
			ID:   db.PositionID,
			Name: db.PositionName,
		},
	}
}

type WorkerRepositoryInterface interface {
	GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error)
	FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error)
	FindWorkerByEmail(ctx context.Context, email string) (*entities.Worker, error)
	WorkerPositionExists(ctx context.Context, id uint64) (bool, error)
	WorkerPositionExistsTx(ctx context.Context, tx pgx.Tx, id uint64) (bool, error)
	CreateWorker(ctx context.Context, tx pgx.Tx, worker entities.Worker) (uint64, error)
	UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error)
	DeleteWorker(ctx context.Context, id uint64) error
}

type workerRepository struct{ storage *pgxpool.Pool }

func NewWorkerRepository(storage *pgxpool.Pool) WorkerRepositoryInterface {
	return &workerRepository{storage: storage}
}

func (r *workerRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select("w.id", "w.name", "w.surname", "w.email", "w.phone_number", "w.address", "wp.id", "wp.name").
		From("workers w").
		Join("worker_positions wp ON wp.id = w.worker_position_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *workerRepository) GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("w.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]dto.WorkerDTO, 0)
	for rows.Next() {
		var dbRow dbWorker
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Surname, &dbRow.Email, &dbRow.PhoneNumber, &dbRow.Address, &dbRow.PositionID, &dbRow.PositionName); err != nil {
			return nil, err
		}
		workers = append(workers, dbRow.ToDTO())
	}
	return workers, rows.Err()
}

func (r *workerRepository) FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"w.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var dbRow dbWorker
	err = r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Surname, &dbRow.Email, &dbRow.PhoneNumber, &dbRow.Address, &dbRow.PositionID, &dbRow.PositionName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	workerDTO := dbRow.ToDTO()
	return &workerDTO, nil
}

// FindWorkerByEmail возвращает запись с хешем пароля - только для
// проверки учётных данных, наружу не сериализуется.
func (r *workerRepository) FindWorkerByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	query := "SELECT id, name, surname, email, password, phone_number, address, worker_position_id FROM workers WHERE email = $1"

	var worker entities.Worker
	err := r.storage.QueryRow(ctx, query, email).Scan(
		&worker.ID, &worker.Name, &worker.Surname, &worker.Email,
		&worker.Password, &worker.PhoneNumber, &worker.Address, &worker.WorkerPositionID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

const workerPositionExistsQuery = "SELECT EXISTS (SELECT 1 FROM worker_positions WHERE id = $1)"

func (r *workerRepository) WorkerPositionExists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, workerPositionExistsQuery, id).Scan(&exists)
	return exists, err
}

func (r *workerRepository) WorkerPositionExistsTx(ctx context.Context, tx pgx.Tx, id uint64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, workerPositionExistsQuery, id).Scan(&exists)
	return exists, err
}

// CreateWorker выполняется внутри транзакции регистрации: проверка должности
// и вставка не должны разъезжаться между собой.
func (r *workerRepository) CreateWorker(ctx context.Context, tx pgx.Tx, worker entities.Worker) (uint64, error) {
	query := `INSERT INTO workers (name, surname, email, password, phone_number, address, worker_position_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id uint64
	err := tx.QueryRow(ctx, query,
		worker.Name, worker.Surname, worker.Email, worker.Password,
		worker.PhoneNumber, worker.Address, worker.WorkerPositionID,
	).Scan(&id)
	if err != nil {
		return 0, wrapPgError(err)
	}
	return id, nil
}

func (r *workerRepository) UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Surname != nil {
		setClauses = append(setClauses, fmt.Sprintf("surname = $%d", argId))
		args = append(args, *payload.Surname)
		argId++
	}
	if payload.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argId))
		args = append(args, *payload.Email)
		argId++
	}
	if payload.PhoneNumber != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone_number = $%d", argId))
		args = append(args, *payload.PhoneNumber)
		argId++
	}
	if payload.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argId))
		args = append(args, *payload.Address)
		argId++
	}
	if payload.WorkerPositionID != nil {
		setClauses = append(setClauses, fmt.Sprintf("worker_position_id = $%d", argId))
		args = append(args, *payload.WorkerPositionID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindWorker(ctx, id)
	}

	query := fmt.Sprintf("UPDATE workers SET %s WHERE id = $%d RETURNING id",
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
	return r.FindWorker(ctx, updatedID)
}

func (r *workerRepository) DeleteWorker(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM workers WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
