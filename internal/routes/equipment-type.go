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

func runEquipmentTypeRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	equipmentTypeRepository := repositories.NewEquipmentTypeRepository(dbConn)
	equipmentTypeService := services.NewEquipmentTypeService(equipmentTypeRepository, logger)
	equipmentTypeCtrl := controllers.NewEquipmentTypeController(equipmentTypeService, logger)

	e.GET("/equipment_types", equipmentTypeCtrl.GetEquipmentTypes, authMW.Auth)
	e.GET("/equipment_type/:id", equipmentTypeCtrl.FindEquipmentType, authMW.Auth)
	e.POST("/equipment_type", equipmentTypeCtrl.CreateEquipmentType, authMW.Auth)
	e.PUT("/equipment_type/:id", equipmentTypeCtrl.UpdateEquipmentType, authMW.Auth)
	e.DELETE("/equipment_type/:id", equipmentTypeCtrl.DeleteEquipmentType, authMW.FreshAuth)
}
