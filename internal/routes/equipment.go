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

func runEquipmentRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	equipmentService := services.NewEquipmentService(equipmentRepository, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	e.GET("/equipments", equipmentCtrl.GetEquipments, authMW.Auth)
	e.GET("/equipment/:id", equipmentCtrl.FindEquipment, authMW.Auth)
	e.POST("/equipment", equipmentCtrl.CreateEquipment, authMW.Auth)
	e.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment, authMW.Auth)
	e.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment, authMW.FreshAuth)
}
