package services

import (
	"context"
	"fmt"
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterWorkerDTO) (*dto.WorkerDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, claims *service.JwtCustomClaim) (*dto.AccessTokenDTO, error)
	Logout(ctx context.Context, jti string) error
}

type AuthService struct {
	workerRepository repositories.WorkerRepositoryInterface
	blocklist        repositories.TokenBlocklistInterface
	txManager        repositories.TxManagerInterface
	jwtService       service.JWTService
	logger           *zap.Logger
}

func NewAuthService(
	workerRepository repositories.WorkerRepositoryInterface,
	blocklist repositories.TokenBlocklistInterface,
	txManager repositories.TxManagerInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		workerRepository: workerRepository,
		blocklist:        blocklist,
		txManager:        txManager,
		jwtService:       jwtService,
		logger:           logger,
	}
}

// Register создаёт работника. Проверка должности и вставка идут в одной
// транзакции: должность проверяется до вставки, чтобы отдать внятную 422,
// а не голое нарушение внешнего ключа.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterWorkerDTO) (*dto.WorkerDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Register: ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	worker := entities.Worker{
		Name:             payload.Name,
		Surname:          payload.Surname,
		Email:            payload.Email,
		Password:         hash,
		PhoneNumber:      payload.PhoneNumber,
		Address:          payload.Address,
		WorkerPositionID: payload.WorkerPositionID,
	}

	var createdID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		exists, txErr := s.workerRepository.WorkerPositionExistsTx(ctx, tx, payload.WorkerPositionID)
		if txErr != nil {
			return txErr
		}
		if !exists {
			return apperrors.NewHttpError(
				http.StatusUnprocessableEntity,
				fmt.Sprintf("Worker position with id=%d does not exist.", payload.WorkerPositionID),
				nil, nil,
			)
		}

		createdID, txErr = s.workerRepository.CreateWorker(ctx, tx, worker)
		return txErr
	})
	if err != nil {
		s.logger.Warn("Register: регистрация отклонена", zap.Error(err))
		return nil, err
	}

	created, err := s.workerRepository.FindWorker(ctx, createdID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: работник зарегистрирован",
		zap.Uint64("id", created.ID),
		zap.String("email", created.Email),
	)
	return created, nil
}

// Login проверяет пароль и выдаёт пару токенов. На любой провал отвечаем
// одним и тем же ErrInvalidCredentials: нельзя раскрывать, существует ли email.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	worker, err := s.workerRepository.FindWorkerByEmail(ctx, payload.Email)
	if err != nil {
		s.logger.Warn("Login: работник не найден", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(worker.Password, payload.Password); err != nil {
		s.logger.Warn("Login: неверный пароль", zap.Uint64("workerID", worker.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(worker.ID)
	if err != nil {
		s.logger.Error("Login: ошибка генерации токенов", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Login: вход выполнен", zap.Uint64("workerID", worker.ID))
	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh выдаёт новый access-токен по refresh-токену. Токен не свежий:
// разрушающие операции после refresh требуют повторного входа.
func (s *AuthService) Refresh(ctx context.Context, claims *service.JwtCustomClaim) (*dto.AccessTokenDTO, error) {
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.blocklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Refresh: ошибка проверки блоклиста", zap.Error(err))
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.WorkerID, false)
	if err != nil {
		s.logger.Error("Refresh: ошибка генерации access-токена", zap.Error(err))
		return nil, err
	}

	return &dto.AccessTokenDTO{AccessToken: accessToken}, nil
}

// Logout заносит jti текущего токена в блоклист. Повторный logout того же
// токена безвреден: Revoke идемпотентен.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.blocklist.Revoke(ctx, jti); err != nil {
		s.logger.Error("Logout: ошибка отзыва токена", zap.Error(err))
		return err
	}
	s.logger.Info("Logout: токен отозван", zap.String("jti", jti))
	return nil
}
