package middleware

import (
	"context"
	"strings"

	"workshop-system/internal/repositories"
	"workshop-system/pkg/contextkeys"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	blocklist  repositories.TokenBlocklistInterface
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, blocklist repositories.TokenBlocklistInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		blocklist:  blocklist,
		logger:     logger,
	}
}

// Auth пропускает запрос с валидным, не отозванным access-токеном.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.authenticate(c, next, false)
	}
}

// FreshAuth дополнительно требует свежий токен - выданный по паролю,
// а не полученный через refresh-поток. Вешается на разрушающие операции.
func (m *AuthMiddleware) FreshAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.authenticate(c, next, true)
	}
}

// authenticate выполняет упорядоченную цепочку проверок: наличие токена,
// подпись, срок действия, блоклист, тип токена, свежесть. Первый провал
// завершает запрос, так что у каждого отказа ровно одна причина.
func (m *AuthMiddleware) authenticate(c echo.Context, next echo.HandlerFunc, freshRequired bool) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
		return utils.ErrorResponse(c, apperrors.ErrAuthorizationRequired, m.logger)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
		return utils.ErrorResponse(c, apperrors.ErrAuthorizationRequired, m.logger)
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
		return utils.ErrorResponse(c, err, m.logger)
	}

	revoked, err := m.blocklist.IsRevoked(c.Request().Context(), claims.ID)
	if err != nil {
		m.logger.Error("AuthMiddleware: Ошибка проверки блоклиста", zap.Error(err))
		return utils.ErrorResponse(c, err, m.logger)
	}
	if revoked {
		m.logger.Warn("AuthMiddleware: Токен отозван", zap.String("jti", claims.ID))
		return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, m.logger)
	}

	if claims.IsRefreshToken {
		m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
		return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
	}

	if freshRequired && !claims.Fresh {
		m.logger.Warn("AuthMiddleware: Требуется свежий токен", zap.Uint64("workerID", claims.WorkerID))
		return utils.ErrorResponse(c, apperrors.ErrFreshTokenRequired, m.logger)
	}

	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, contextkeys.WorkerIDKey, claims.WorkerID)
	ctx = context.WithValue(ctx, contextkeys.TokenJTIKey, claims.ID)
	c.SetRequest(c.Request().WithContext(ctx))

	return next(c)
}
