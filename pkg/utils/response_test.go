package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "workshop-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ErrorResponse(c, err, zap.NewNop()))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorResponse_AuthErrors(t *testing.T) {
	cases := []struct {
		err     *apperrors.AuthError
		bodyKey string
		text    string
		reason  string
	}{
		{apperrors.ErrTokenExpired, "message", "The token has expired.", "token_expired"},
		{apperrors.ErrInvalidToken, "message", "Signature verification failed.", "invalid_token"},
		{apperrors.ErrAuthorizationRequired, "description", "Request does not contain an access token.", "authorization_required"},
		{apperrors.ErrFreshTokenRequired, "description", "The token is not fresh.", "fresh_token_required"},
		{apperrors.ErrTokenRevoked, "description", "The token has been revoked.", "token_revoked"},
	}

	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			rec, body := respondWith(t, tc.err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tc.reason, body["error"])
			assert.Equal(t, tc.text, body[tc.bodyKey])
		})
	}
}

func TestErrorResponse_ConstraintViolation(t *testing.T) {
	rec, body := respondWith(t, apperrors.NewConstraintViolationError("duplicate key value violates unique constraint"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unique constraint violation: duplicate key value violates unique constraint", body["message"])
}

func TestErrorResponse_NotFound(t *testing.T) {
	rec, body := respondWith(t, apperrors.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", body["message"])
}

func TestErrorResponse_InvalidCredentials(t *testing.T) {
	rec, body := respondWith(t, apperrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials.", body["message"])
}

func TestErrorResponse_HttpError(t *testing.T) {
	rec, body := respondWith(t, apperrors.NewHttpError(http.StatusUnprocessableEntity, "Worker position with id=9 does not exist.", nil, nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Worker position with id=9 does not exist.", body["message"])
}

func TestErrorResponse_Unknown(t *testing.T) {
	rec, body := respondWith(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error.", body["message"])
}
