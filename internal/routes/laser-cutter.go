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

func runLaserCutterRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	laserCutterRepository := repositories.NewLaserCutterRepository(dbConn)
	laserCutterService := services.NewLaserCutterService(laserCutterRepository, logger)
	laserCutterCtrl := controllers.NewLaserCutterController(laserCutterService, logger)

	e.GET("/laser_cutters", laserCutterCtrl.GetLaserCutters, authMW.Auth)
	e.GET("/laser_cutter/:id", laserCutterCtrl.FindLaserCutter, authMW.Auth)
	e.POST("/laser_cutter", laserCutterCtrl.CreateLaserCutter, authMW.Auth)
	e.PUT("/laser_cutter/:id", laserCutterCtrl.UpdateLaserCutter, authMW.Auth)
	e.DELETE("/laser_cutter/:id", laserCutterCtrl.DeleteLaserCutter, authMW.FreshAuth)
}
