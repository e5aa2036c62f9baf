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

func runLaserCutterRepairRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	laserCutterRepairRepository := repositories.NewLaserCutterRepairRepository(dbConn)
	laserCutterRepairService := services.NewLaserCutterRepairService(laserCutterRepairRepository, logger)
	laserCutterRepairCtrl := controllers.NewLaserCutterRepairController(laserCutterRepairService, logger)

	e.GET("/laser_cutter_repairs", laserCutterRepairCtrl.GetLaserCutterRepairs, authMW.Auth)
	e.GET("/laser_cutter_repair/:id", laserCutterRepairCtrl.FindLaserCutterRepair, authMW.Auth)
	e.POST("/laser_cutter_repair", laserCutterRepairCtrl.CreateLaserCutterRepair, authMW.Auth)
	e.PUT("/laser_cutter_repair/:id", laserCutterRepairCtrl.UpdateLaserCutterRepair, authMW.Auth)
	e.DELETE("/laser_cutter_repair/:id", laserCutterRepairCtrl.DeleteLaserCutterRepair, authMW.FreshAuth)
}
