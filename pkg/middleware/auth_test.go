package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-system/internal/repositories"
	"workshop-system/pkg/contextkeys"
	"workshop-system/pkg/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authTestEnv struct {
	jwtSvc    service.JWTService
	blocklist repositories.TokenBlocklistInterface
	mw        *AuthMiddleware
}

func newAuthTestEnv() *authTestEnv {
	jwtSvc := service.NewJWTService("test-secret", time.Minute*15, time.Hour)
	blocklist := repositories.NewInMemoryTokenBlocklist()
	return &authTestEnv{
		jwtSvc:    jwtSvc,
		blocklist: blocklist,
		mw:        NewAuthMiddleware(jwtSvc, blocklist, zap.NewNop()),
	}
}

// do прогоняет запрос через middleware и возвращает записанный ответ.
func (env *authTestEnv) do(t *testing.T, header string, fresh bool) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	next := func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	}

	var h echo.HandlerFunc
	if fresh {
		h = env.mw.FreshAuth(next)
	} else {
		h = env.mw.Auth(next)
	}
	require.NoError(t, h(c))
	return rec, handlerCalled
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuth_MissingToken(t *testing.T) {
	env := newAuthTestEnv()

	rec, called := env.do(t, "", false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "authorization_required", body["error"])
	assert.Equal(t, "Request does not contain an access token.", body["description"])
}

func TestAuth_MalformedHeader(t *testing.T) {
	env := newAuthTestEnv()

	rec, called := env.do(t, "Token abc", false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authorization_required", decodeBody(t, rec)["error"])
}

func TestAuth_InvalidSignature(t *testing.T) {
	env := newAuthTestEnv()
	other := service.NewJWTService("other-secret", time.Minute, time.Hour)
	token, err := other.GenerateAccessToken(1, true)
	require.NoError(t, err)

	rec, called := env.do(t, "Bearer "+token, false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "invalid_token", body["error"])
	assert.Equal(t, "Signature verification failed.", body["message"])
}

func TestAuth_ExpiredToken(t *testing.T) {
	env := newAuthTestEnv()
	expired := service.NewJWTService("test-secret", -time.Minute, time.Hour)
	token, err := expired.GenerateAccessToken(1, true)
	require.NoError(t, err)

	rec, called := env.do(t, "Bearer "+token, false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "token_expired", body["error"])
	assert.Equal(t, "The token has expired.", body["message"])
}

func TestAuth_RevokedToken(t *testing.T) {
	env := newAuthTestEnv()
	token, err := env.jwtSvc.GenerateAccessToken(1, true)
	require.NoError(t, err)

	claims, err := env.jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, env.blocklist.Revoke(context.Background(), claims.ID))

	rec, called := env.do(t, "Bearer "+token, false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "token_revoked", body["error"])
	assert.Equal(t, "The token has been revoked.", body["description"])
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	env := newAuthTestEnv()
	_, refresh, err := env.jwtSvc.GenerateTokens(1)
	require.NoError(t, err)

	rec, called := env.do(t, "Bearer "+refresh, false)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", decodeBody(t, rec)["error"])
}

func TestFreshAuth_NonFreshRejected(t *testing.T) {
	env := newAuthTestEnv()
	token, err := env.jwtSvc.GenerateAccessToken(1, false)
	require.NoError(t, err)

	rec, called := env.do(t, "Bearer "+token, true)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "fresh_token_required", body["error"])
	assert.Equal(t, "The token is not fresh.", body["description"])
}

func TestFreshAuth_FreshAccepted(t *testing.T) {
	env := newAuthTestEnv()
	token, err := env.jwtSvc.GenerateAccessToken(9, true)
	require.NoError(t, err)

	rec, called := env.do(t, "Bearer "+token, true)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_SetsContextValues(t *testing.T) {
	env := newAuthTestEnv()
	token, err := env.jwtSvc.GenerateAccessToken(17, true)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotWorkerID uint64
	var gotJTI string
	h := env.mw.Auth(func(c echo.Context) error {
		gotWorkerID, _ = c.Request().Context().Value(contextkeys.WorkerIDKey).(uint64)
		gotJTI, _ = c.Request().Context().Value(contextkeys.TokenJTIKey).(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))

	assert.Equal(t, uint64(17), gotWorkerID)
	assert.NotEmpty(t, gotJTI)
}
