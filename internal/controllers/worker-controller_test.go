package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workshop-system/internal/dto"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWorkerService struct {
	workers   []dto.WorkerDTO
	deleteErr error
	updateErr error
	deletedID uint64
}

func (f *fakeWorkerService) GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error) {
	return f.workers, nil
}

func (f *fakeWorkerService) FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error) {
	for i := range f.workers {
		if f.workers[i].ID == id {
			return &f.workers[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeWorkerService) UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dto.WorkerDTO{ID: id}, nil
}

func (f *fakeWorkerService) DeleteWorker(ctx context.Context, id uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func newWorkerTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWorkerController_FindWorker(t *testing.T) {
	svc := &fakeWorkerService{workers: []dto.WorkerDTO{{ID: 3, Name: "Ivan", Email: "ivan@example.com"}}}
	ctrl := NewWorkerController(svc, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodGet, "/worker/3", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, ctrl.FindWorker(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got dto.WorkerDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(3), got.ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestWorkerController_FindWorker_NotFound(t *testing.T) {
	ctrl := NewWorkerController(&fakeWorkerService{}, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodGet, "/worker/9", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")

	require.NoError(t, ctrl.FindWorker(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkerController_FindWorker_BadID(t *testing.T) {
	ctrl := NewWorkerController(&fakeWorkerService{}, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodGet, "/worker/abc", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	require.NoError(t, ctrl.FindWorker(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkerController_UpdateWorker_Message(t *testing.T) {
	ctrl := NewWorkerController(&fakeWorkerService{}, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodPut, "/worker/3", `{"name": "Pyotr"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, ctrl.UpdateWorker(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "worker updated successfully."}`, rec.Body.String())
}

func TestWorkerController_DeleteWorker_Message(t *testing.T) {
	svc := &fakeWorkerService{}
	ctrl := NewWorkerController(svc, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodDelete, "/worker/3", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, ctrl.DeleteWorker(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Worker deleted."}`, rec.Body.String())
	assert.Equal(t, uint64(3), svc.deletedID)
}

func TestWorkerController_DeleteWorker_ConstraintViolation(t *testing.T) {
	svc := &fakeWorkerService{deleteErr: apperrors.NewConstraintViolationError("worker is referenced by equipment_repairs")}
	ctrl := NewWorkerController(svc, zap.NewNop())

	ctx, rec := newWorkerTestContext(t, http.MethodDelete, "/worker/3", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, ctrl.DeleteWorker(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unique constraint violation: worker is referenced by equipment_repairs", body["message"])
}
