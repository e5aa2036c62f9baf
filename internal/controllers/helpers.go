package controllers

import (
	"net/http"
	"strconv"

	apperrors "workshop-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

// parseID читает числовой идентификатор из параметра пути.
func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Invalid id.",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
