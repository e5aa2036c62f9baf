package controllers

import (
	"net/http"
	"strings"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	"workshop-system/pkg/contextkeys"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, jwtService service.JWTService, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, jwtService: jwtService, logger: logger}
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterWorkerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	worker, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, worker)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	tokens, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, tokens)
}

// Logout отзывает jti токена, с которым пришёл запрос. Сам jti кладёт в
// контекст Auth-middleware.
func (c *AuthController) Logout(ctx echo.Context) error {
	jti, ok := ctx.Request().Context().Value(contextkeys.TokenJTIKey).(string)
	if !ok || jti == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrAuthorizationRequired, c.logger)
	}

	if err := c.authService.Logout(ctx.Request().Context(), jti); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Successfully logged out")
}

// Refresh принимает refresh-токен в заголовке Authorization и выдаёт новый
// access-токен. Маршрут не ходит через Auth-middleware: тот отвергает
// refresh-токены, поэтому заголовок разбирается здесь.
func (c *AuthController) Refresh(ctx echo.Context) error {
	authHeader := ctx.Request().Header.Get("Authorization")
	if authHeader == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrAuthorizationRequired, c.logger)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return utils.ErrorResponse(ctx, apperrors.ErrAuthorizationRequired, c.logger)
	}

	claims, err := c.jwtService.ValidateToken(parts[1])
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	token, err := c.authService.Refresh(ctx.Request().Context(), claims)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, token)
}
