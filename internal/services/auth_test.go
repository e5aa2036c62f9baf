package services

import (
	"context"
	"testing"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTxManager исполняет fn без настоящей транзакции.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// fakeWorkerRepository - ручная заглушка вместо живой БД.
type fakeWorkerRepository struct {
	workersByEmail map[string]*entities.Worker
	positionExists bool
	createdWorker  *entities.Worker
	findByEmailErr error
}

func (f *fakeWorkerRepository) GetWorkers(ctx context.Context) ([]dto.WorkerDTO, error) {
	return nil, nil
}

func (f *fakeWorkerRepository) FindWorker(ctx context.Context, id uint64) (*dto.WorkerDTO, error) {
	if f.createdWorker != nil {
		return &dto.WorkerDTO{
			ID:      id,
			Name:    f.createdWorker.Name,
			Surname: f.createdWorker.Surname,
			Email:   f.createdWorker.Email,
		}, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeWorkerRepository) FindWorkerByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	w, ok := f.workersByEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepository) WorkerPositionExists(ctx context.Context, id uint64) (bool, error) {
	return f.positionExists, nil
}

func (f *fakeWorkerRepository) WorkerPositionExistsTx(ctx context.Context, tx pgx.Tx, id uint64) (bool, error) {
	return f.positionExists, nil
}

func (f *fakeWorkerRepository) CreateWorker(ctx context.Context, tx pgx.Tx, worker entities.Worker) (uint64, error) {
	f.createdWorker = &worker
	return 1, nil
}

func (f *fakeWorkerRepository) UpdateWorker(ctx context.Context, id uint64, payload dto.UpdateWorkerDTO) (*dto.WorkerDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeWorkerRepository) DeleteWorker(ctx context.Context, id uint64) error {
	return apperrors.ErrNotFound
}

func newTestAuthService(repo repositories.WorkerRepositoryInterface) (*AuthService, repositories.TokenBlocklistInterface, service.JWTService) {
	blocklist := repositories.NewInMemoryTokenBlocklist()
	jwtSvc := service.NewJWTService("test-secret", time.Minute*15, time.Hour)
	return NewAuthService(repo, blocklist, fakeTxManager{}, jwtSvc, zap.NewNop()), blocklist, jwtSvc
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &fakeWorkerRepository{positionExists: true}
	svc, _, _ := newTestAuthService(repo)

	payload := dto.RegisterWorkerDTO{
		Name:             "Ivan",
		Surname:          "Petrov",
		Email:            "ivan@example.com",
		Password:         "secret",
		PhoneNumber:      "+7900",
		Address:          "Moscow",
		WorkerPositionID: 3,
	}

	created, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", created.Email)

	require.NotNil(t, repo.createdWorker)
	assert.NotEqual(t, "secret", repo.createdWorker.Password, "в хранилище уходит хеш, не открытый пароль")
	assert.NoError(t, utils.ComparePasswords(repo.createdWorker.Password, "secret"))
}

func TestRegister_UnknownPosition(t *testing.T) {
	repo := &fakeWorkerRepository{positionExists: false}
	svc, _, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterWorkerDTO{
		Name: "a", Surname: "b", Email: "a@b.c", Password: "p",
		PhoneNumber: "1", Address: "x", WorkerPositionID: 99,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
	assert.Equal(t, "Worker position with id=99 does not exist.", httpErr.Message)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	repo := &fakeWorkerRepository{workersByEmail: map[string]*entities.Worker{
		"ivan@example.com": {ID: 5, Email: "ivan@example.com", Password: hash},
	}}
	svc, _, jwtSvc := newTestAuthService(repo)

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{Email: "ivan@example.com", Password: "secret"})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), claims.WorkerID)
	assert.True(t, claims.Fresh)
}

// Неизвестный email и неверный пароль должны быть неотличимы для вызывающего.
func TestLogin_FailuresIndistinguishable(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	repo := &fakeWorkerRepository{workersByEmail: map[string]*entities.Worker{
		"ivan@example.com": {ID: 5, Email: "ivan@example.com", Password: hash},
	}}
	svc, _, _ := newTestAuthService(repo)

	_, errWrongPassword := svc.Login(context.Background(), dto.LoginDTO{Email: "ivan@example.com", Password: "wrong"})
	_, errUnknownEmail := svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@example.com", Password: "secret"})

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

func TestRefresh_IssuesNonFreshAccessToken(t *testing.T) {
	svc, _, jwtSvc := newTestAuthService(&fakeWorkerRepository{})

	_, refresh, err := jwtSvc.GenerateTokens(8)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(refresh)
	require.NoError(t, err)

	token, err := svc.Refresh(context.Background(), claims)
	require.NoError(t, err)

	newClaims, err := jwtSvc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), newClaims.WorkerID)
	assert.False(t, newClaims.Fresh, "access-токен из refresh-потока не свежий")
	assert.False(t, newClaims.IsRefreshToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _, jwtSvc := newTestAuthService(&fakeWorkerRepository{})

	access, err := jwtSvc.GenerateAccessToken(8, true)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(access)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_RejectsRevokedToken(t *testing.T) {
	svc, blocklist, jwtSvc := newTestAuthService(&fakeWorkerRepository{})

	_, refresh, err := jwtSvc.GenerateTokens(8)
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(refresh)
	require.NoError(t, err)
	require.NoError(t, blocklist.Revoke(context.Background(), claims.ID))

	_, err = svc.Refresh(context.Background(), claims)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestLogout_RevokesJTI(t *testing.T) {
	svc, blocklist, _ := newTestAuthService(&fakeWorkerRepository{})
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, "some-jti"))

	revoked, err := blocklist.IsRevoked(ctx, "some-jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Повторный logout того же токена безвреден.
	require.NoError(t, svc.Logout(ctx, "some-jti"))
}
