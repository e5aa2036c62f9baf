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

type LaserCutterRepairController struct {
	laserCutterRepairService services.LaserCutterRepairServiceInterface
	logger                   *zap.Logger
}

func NewLaserCutterRepairController(laserCutterRepairService services.LaserCutterRepairServiceInterface, logger *zap.Logger) *LaserCutterRepairController {
	return &LaserCutterRepairController{laserCutterRepairService: laserCutterRepairService, logger: logger}
}

func (c *LaserCutterRepairController) GetLaserCutterRepairs(ctx echo.Context) error {
	res, err := c.laserCutterRepairService.GetLaserCutterRepairs(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterRepairController) FindLaserCutterRepair(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.laserCutterRepairService.FindLaserCutterRepair(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterRepairController) CreateLaserCutterRepair(ctx echo.Context) error {
	var payload dto.CreateLaserCutterRepairDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.laserCutterRepairService.CreateLaserCutterRepair(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *LaserCutterRepairController) UpdateLaserCutterRepair(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateLaserCutterRepairDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.laserCutterRepairService.UpdateLaserCutterRepair(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "laser cutter repair updated successfully.")
}

func (c *LaserCutterRepairController) DeleteLaserCutterRepair(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.laserCutterRepairService.DeleteLaserCutterRepair(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Laser cutter repair deleted.")
}
