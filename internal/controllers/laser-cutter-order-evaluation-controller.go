package controllers

import (
	"net/http"

	"workshop-system/internal/dto"
	"workshop-system/internal/services"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LaserCutterOrderEvaluationController struct {
	evaluationService services.LaserCutterOrderEvaluationServiceInterface
	logger            *zap.Logger
}

func NewLaserCutterOrderEvaluationController(
	evaluationService services.LaserCutterOrderEvaluationServiceInterface,
	logger *zap.Logger,
) *LaserCutterOrderEvaluationController {
	return &LaserCutterOrderEvaluationController{evaluationService: evaluationService, logger: logger}
}

func (c *LaserCutterOrderEvaluationController) GetEvaluations(ctx echo.Context) error {
	res, err := c.evaluationService.GetEvaluations(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterOrderEvaluationController) FindEvaluation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.evaluationService.FindEvaluation(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterOrderEvaluationController) CreateEvaluation(ctx echo.Context) error {
	var payload dto.CreateLaserCutterOrderEvaluationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.evaluationService.CreateEvaluation(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *LaserCutterOrderEvaluationController) UpdateEvaluation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateLaserCutterOrderEvaluationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.evaluationService.UpdateEvaluation(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "laser cutter order evaluation updated successfully.")
}

func (c *LaserCutterOrderEvaluationController) DeleteEvaluation(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.evaluationService.DeleteEvaluation(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Laser cutter order evaluation deleted.")
}
