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

func runWorkerPositionRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	workerPositionRepository := repositories.NewWorkerPositionRepository(dbConn)
	workerPositionService := services.NewWorkerPositionService(workerPositionRepository, logger)
	workerPositionCtrl := controllers.NewWorkerPositionController(workerPositionService, logger)

	e.GET("/worker_positions", workerPositionCtrl.GetWorkerPositions, authMW.Auth)
	e.GET("/worker_position/:id", workerPositionCtrl.FindWorkerPosition, authMW.Auth)
	e.POST("/worker_position", workerPositionCtrl.CreateWorkerPosition, authMW.Auth)
	e.PUT("/worker_position/:id", workerPositionCtrl.UpdateWorkerPosition, authMW.Auth)
	e.DELETE("/worker_position/:id", workerPositionCtrl.DeleteWorkerPosition, authMW.FreshAuth)
}
