package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/internal/repositories"
	"workshop-system/internal/services"
	"workshop-system/pkg/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentConditionRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	equipmentConditionRepository := repositories.NewEquipmentConditionRepository(dbConn)
	equipmentConditionService := services.NewEquipmentConditionService(equipmentConditionRepository, logger)
	equipmentConditionCtrl := controllers.NewEquipmentConditionController(equipmentConditionService, logger)

	e.GET("/equipment_conditions", equipmentConditionCtrl.GetEquipmentConditions, authMW.Auth)
	e.GET("/equipment_condition/:id", equipmentConditionCtrl.FindEquipmentCondition, authMW.Auth)
	e.POST("/equipment_condition", equipmentConditionCtrl.CreateEquipmentCondition, authMW.Auth)
	e.PUT("/equipment_condition/:id", equipmentConditionCtrl.UpdateEquipmentCondition, authMW.Auth)
	e.DELETE("/equipment_condition/:id", equipmentConditionCtrl.DeleteEquipmentCondition, authMW.FreshAuth)
}
