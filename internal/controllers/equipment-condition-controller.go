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

type EquipmentConditionController struct {
	equipmentConditionService services.EquipmentConditionServiceInterface
	logger                    *zap.Logger
}

func NewEquipmentConditionController(equipmentConditionService services.EquipmentConditionServiceInterface, logger *zap.Logger) *EquipmentConditionController {
	return &EquipmentConditionController{equipmentConditionService: equipmentConditionService, logger: logger}
}

func (c *EquipmentConditionController) GetEquipmentConditions(ctx echo.Context) error {
	res, err := c.equipmentConditionService.GetEquipmentConditions(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *EquipmentConditionController) FindEquipmentCondition(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentConditionService.FindEquipmentCondition(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *EquipmentConditionController) CreateEquipmentCondition(ctx echo.Context) error {
	var payload dto.CreateEquipmentConditionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentConditionService.CreateEquipmentCondition(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *EquipmentConditionController) UpdateEquipmentCondition(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentConditionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body.", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.equipmentConditionService.UpdateEquipmentCondition(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "equipment condition updated successfully.")
}

func (c *EquipmentConditionController) DeleteEquipmentCondition(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipmentConditionService.DeleteEquipmentCondition(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Equipment condition deleted.")
}
