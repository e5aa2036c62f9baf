package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	apperrors "workshop-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты работают против живой БД из TEST_DATABASE_URL
// и пропускаются, когда она не задана.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, интеграционный тест пропущен")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../../migrations"))
	require.NoError(t, db.Close())

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// cleanupWorkerTables очищает таблицы для изоляции тестов.
func cleanupWorkerTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE equipment_repairs, laser_cutter_repairs, workers, worker_positions RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func seedWorkerPosition(t *testing.T, pool *pgxpool.Pool) uint64 {
	t.Helper()
	var id uint64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO worker_positions (name) VALUES ('Инженер') RETURNING id`).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestWorker(t *testing.T, pool *pgxpool.Pool, worker entities.Worker) (uint64, error) {
	t.Helper()
	repo := NewWorkerRepository(pool)
	txManager := NewTxManager(pool)

	var id uint64
	err := txManager.RunInTransaction(context.Background(), func(tx pgx.Tx) error {
		var txErr error
		id, txErr = repo.CreateWorker(context.Background(), tx, worker)
		return txErr
	})
	return id, err
}

func strPtr(s string) *string { return &s }

// Повторная вставка с занятым email обязана упасть нарушением ограничения
// и не тронуть первую запись.
func TestWorkerRepository_Integration_DuplicateEmail(t *testing.T) {
	pool := integrationPool(t)
	cleanupWorkerTables(t, pool)
	positionID := seedWorkerPosition(t, pool)
	repo := NewWorkerRepository(pool)
	ctx := context.Background()

	first := entities.Worker{
		Name: "Ivan", Surname: "Petrov", Email: "ivan@example.com",
		Password: "hash-1", PhoneNumber: "+7900", Address: "Moscow",
		WorkerPositionID: positionID,
	}
	_, err := createTestWorker(t, pool, first)
	require.NoError(t, err)

	second := first
	second.Name = "Pyotr"
	second.Password = "hash-2"
	_, err = createTestWorker(t, pool, second)
	require.Error(t, err)

	var cvErr *apperrors.ConstraintViolationError
	assert.ErrorAs(t, err, &cvErr, "дубликат email отдаётся как нарушение ограничения")

	workers, err := repo.GetWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 1)

	intact, err := repo.FindWorkerByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ivan", intact.Name, "первая запись не тронута откатом второй вставки")
	assert.Equal(t, "hash-1", intact.Password)
}

// Частичное обновление меняет только переданное поле, остальные остаются
// байт в байт прежними, включая хеш пароля.
func TestWorkerRepository_Integration_PartialUpdate(t *testing.T) {
	pool := integrationPool(t)
	cleanupWorkerTables(t, pool)
	positionID := seedWorkerPosition(t, pool)
	repo := NewWorkerRepository(pool)
	ctx := context.Background()

	id, err := createTestWorker(t, pool, entities.Worker{
		Name: "Ivan", Surname: "Petrov", Email: "ivan@example.com",
		Password: "hash-1", PhoneNumber: "+7900", Address: "Moscow",
		WorkerPositionID: positionID,
	})
	require.NoError(t, err)

	before, err := repo.FindWorkerByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)

	updated, err := repo.UpdateWorker(ctx, id, dto.UpdateWorkerDTO{Name: strPtr("Pyotr")})
	require.NoError(t, err)
	assert.Equal(t, "Pyotr", updated.Name)

	after, err := repo.FindWorkerByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Pyotr", after.Name)
	assert.Equal(t, before.Surname, after.Surname)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.Password, after.Password)
	assert.Equal(t, before.PhoneNumber, after.PhoneNumber)
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, before.WorkerPositionID, after.WorkerPositionID)
}

func TestWorkerRepository_Integration_DeleteMissing(t *testing.T) {
	pool := integrationPool(t)
	cleanupWorkerTables(t, pool)
	repo := NewWorkerRepository(pool)

	err := repo.DeleteWorker(context.Background(), 12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
