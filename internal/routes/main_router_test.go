package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"workshop-system/internal/controllers"
	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	"workshop-system/internal/services"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/middleware"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubWorkerStorage заменяет Postgres в сквозных сценариях: хранит работников
// в памяти и повторяет контракт репозитория, включая нарушение уникальности
// email.
type stubWorkerStorage struct {
	mu     sync.Mutex
	byID   map[uint64]entities.Worker
	nextID uint64
}

func newStubWorkerStorage() *stubWorkerStorage {
	return &stubWorkerStorage{byID: map[uint64]entities.Worker{}, nextID: 1}
}

func workerToDTO(w entities.Worker) dto.WorkerDTO {
	return dto.WorkerDTO{
		ID:          w.ID,
		Name:        w.Name,
		Surname:     w.Surname,
		Email:       w.Email,
		PhoneNumber: w.PhoneNumber,
		Address:     w.Address,
	}
}

func (s *stubWorkerStorage) GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]dto.WorkerDTO, 0, len(s.byID))
	for _, w := range s.byID {
		res = append(res, workerToDTO(w))
	}
	return res, nil
}

func (s *stubWorkerStorage) FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := workerToDTO(w)
	return &res, nil
}

func (s *stubWorkerStorage) FindWorkerByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.byID {
		if w.Email == email {
			found := w
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubWorkerStorage) WorkerPositionExists(ctx context.Context, id uint64) (bool, error) {
	return true, nil
}

func (s *stubWorkerStorage) WorkerPositionExistsTx(ctx context.Context, tx pgx.Tx, id uint64) (bool, error) {
	return true, nil
}

func (s *stubWorkerStorage) CreateWorker(ctx context.Context, tx pgx.Tx, worker entities.Worker) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.byID {
		if w.Email == worker.Email {
			return 0, apperrors.NewConstraintViolationError(
				`duplicate key value violates unique constraint "workers_email_key"`)
		}
	}
	worker.ID = s.nextID
	s.byID[worker.ID] = worker
	s.nextID++
	return worker.ID, nil
}

func (s *stubWorkerStorage) UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Name != nil {
		w.Name = *payload.Name
	}
	s.byID[id] = w
	res := workerToDTO(w)
	return &res, nil
}

func (s *stubWorkerStorage) DeleteWorker(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type nopTxManager struct{}

func (nopTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// newScenarioRouter поднимает auth- и worker-вертикали на заглушке хранилища,
// с настоящими JWT-сервисом, блоклистом и middleware.
func newScenarioRouter(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	logger := zap.NewNop()

	storage := newStubWorkerStorage()
	blocklist := repositories.NewInMemoryTokenBlocklist()
	jwtSvc := service.NewJWTService("scenario-secret", time.Minute*15, time.Hour)
	authMW := middleware.NewAuthMiddleware(jwtSvc, blocklist, logger)

	authService := services.NewAuthService(storage, blocklist, nopTxManager{}, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)
	workerService := services.NewWorkerService(storage, logger)
	workerCtrl := controllers.NewWorkerController(workerService, logger)

	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.POST("/logout", authCtrl.Logout, authMW.Auth)
	e.POST("/refresh", authCtrl.Refresh)
	e.GET("/workers", workerCtrl.GetWorkers, authMW.Auth)
	e.DELETE("/worker/:id", workerCtrl.DeleteWorker, authMW.FreshAuth)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const registerBody = `{
	"name": "Ivan",
	"surname": "Petrov",
	"email": "ivan@example.com",
	"password": "secret",
	"phone_number": "+7900",
	"address": "Moscow",
	"worker_position_id": 1
}`

// Сквозной сценарий: регистрация, вход теми же учётными данными, доступ к
// защищённому маршруту, logout и отказ по отозванному токену.
func TestScenario_RegisterLoginLogout(t *testing.T) {
	e := newScenarioRouter(t)

	rec := doJSON(e, http.MethodPost, "/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var created dto.WorkerDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "ivan@example.com", created.Email)

	rec = doJSON(e, http.MethodPost, "/login", "", `{"email": "ivan@example.com", "password": "secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var pair dto.TokenPairDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	rec = doJSON(e, http.MethodGet, "/workers", pair.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/logout", pair.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Successfully logged out"}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/workers", pair.AccessToken, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "token_revoked", body["error"])
	assert.Equal(t, "The token has been revoked.", body["description"])
}

// Access-токен из refresh-потока не свежий: чтение разрешено, разрушающие
// операции требуют повторного входа.
func TestScenario_RefreshedTokenIsNotFresh(t *testing.T) {
	e := newScenarioRouter(t)

	rec := doJSON(e, http.MethodPost, "/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/login", "", `{"email": "ivan@example.com", "password": "secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var pair dto.TokenPairDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))

	rec = doJSON(e, http.MethodPost, "/refresh", pair.RefreshToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var refreshed dto.AccessTokenDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
	require.NotEmpty(t, refreshed.AccessToken)

	rec = doJSON(e, http.MethodGet, "/workers", refreshed.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/worker/1", refreshed.AccessToken, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fresh_token_required", body["error"])
	assert.Equal(t, "The token is not fresh.", body["description"])

	rec = doJSON(e, http.MethodDelete, "/worker/1", pair.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Worker deleted."}`, rec.Body.String())
}

// Повторная регистрация с занятым email отдаёт 400 с текстом драйвера.
func TestScenario_DuplicateRegistration(t *testing.T) {
	e := newScenarioRouter(t)

	rec := doJSON(e, http.MethodPost, "/register", "", registerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/register", "", registerBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["message"], "Unique constraint violation:"), body["message"])
}
