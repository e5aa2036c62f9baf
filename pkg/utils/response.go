package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "workshop-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MessageResponse отдаёт подтверждение вида {"message": "..."}.
func MessageResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, map[string]string{"message": message})
}

// ErrorResponse переводит ошибку доменного слоя в тело ответа.
// Отказы аутентификации несут ровно одну причину и машинный код в поле "error";
// нарушения ограничений БД отдаются как 400 с текстом драйвера.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var authErr *apperrors.AuthError
	if errors.As(err, &authErr) {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{
			authErr.BodyKey: authErr.Text,
			"error":         authErr.Reason,
		})
	}

	var constraintErr *apperrors.ConstraintViolationError
	if errors.As(err, &constraintErr) {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"message": constraintErr.Error(),
		})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, map[string]string{"message": "Not found."})
	}

	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials."})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return ctx.JSON(http.StatusUnprocessableEntity, map[string]string{
			"message": "Validation error: " + strings.Join(msgs, "; "),
		})
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return ctx.JSON(httpErr.Code, map[string]string{"message": httpErr.Message})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, map[string]string{
		"message": "Internal server error.",
	})
}
