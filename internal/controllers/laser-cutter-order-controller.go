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

type LaserCutterOrderController struct {
	laserCutterOrderService services.LaserCutterOrderServiceInterface
	logger                  *zap.Logger
}

func NewLaserCutterOrderController(laserCutterOrderService services.LaserCutterOrderServiceInterface, logger *zap.Logger) *LaserCutterOrderController {
	return &LaserCutterOrderController{laserCutterOrderService: laserCutterOrderService, logger: logger}
}

func (c *LaserCutterOrderController) GetLaserCutterOrders(ctx echo.Context) error {
	res, err := c.laserCutterOrderService.GetLaserCutterOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterOrderController) FindLaserCutterOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.laserCutterOrderService.FindLaserCutterOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *LaserCutterOrderController) CreateLaserCutterOrder(ctx echo.Context) error {
	var payload dto.CreateLaserCutterOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.laserCutterOrderService.CreateLaserCutterOrder(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *LaserCutterOrderController) UpdateLaserCutterOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateLaserCutterOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.laserCutterOrderService.UpdateLaserCutterOrder(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "laser cutter order updated successfully.")
}

func (c *LaserCutterOrderController) DeleteLaserCutterOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.laserCutterOrderService.DeleteLaserCutterOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Laser cutter order deleted.")
}
