package service

import (
	"testing"
	"time"

	apperrors "workshop-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestJWTService() JWTService {
	return NewJWTService(testSecret, time.Minute*15, time.Hour*24*7)
}

func TestGenerateTokens_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), accessClaims.WorkerID)
	assert.True(t, accessClaims.Fresh, "access-токен из пары логина должен быть свежим")
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), refreshClaims.WorkerID)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestGenerateTokens_UniqueJTI(t *testing.T) {
	svc := newTestJWTService()

	access1, refresh1, err := svc.GenerateTokens(1)
	require.NoError(t, err)
	access2, _, err := svc.GenerateTokens(1)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(access1)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(access2)
	require.NoError(t, err)
	cr, err := svc.ValidateToken(refresh1)
	require.NoError(t, err)

	assert.NotEmpty(t, c1.ID)
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.NotEqual(t, c1.ID, cr.ID, "access и refresh из одной пары несут разные jti")
}

func TestGenerateAccessToken_NotFresh(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateAccessToken(7, false)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, claims.Fresh)
	assert.False(t, claims.IsRefreshToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(1, true)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSignature(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService("another-secret", time.Minute*15, time.Hour)

	token, err := other.GenerateAccessToken(1, true)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
