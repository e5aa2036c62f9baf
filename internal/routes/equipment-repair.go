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

func runEquipmentRepairRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	equipmentRepairRepository := repositories.NewEquipmentRepairRepository(dbConn)
	equipmentRepairService := services.NewEquipmentRepairService(equipmentRepairRepository, logger)
	equipmentRepairCtrl := controllers.NewEquipmentRepairController(equipmentRepairService, logger)

	e.GET("/equipment_repairs", equipmentRepairCtrl.GetEquipmentRepairs, authMW.Auth)
	e.GET("/equipment_repair/:id", equipmentRepairCtrl.FindEquipmentRepair, authMW.Auth)
	e.POST("/equipment_repair", equipmentRepairCtrl.CreateEquipmentRepair, authMW.Auth)
	e.PUT("/equipment_repair/:id", equipmentRepairCtrl.UpdateEquipmentRepair, authMW.Auth)
	e.DELETE("/equipment_repair/:id", equipmentRepairCtrl.DeleteEquipmentRepair, authMW.FreshAuth)
}
