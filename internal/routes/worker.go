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

// Создание работника живёт в auth-роутере (/register).
func runWorkerRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	workerRepository := repositories.NewWorkerRepository(dbConn)
	workerService := services.NewWorkerService(workerRepository, logger)
	workerCtrl := controllers.NewWorkerController(workerService, logger)

	e.GET("/workers", workerCtrl.GetWorkers, authMW.Auth)
	e.GET("/worker/:id", workerCtrl.FindWorker, authMW.Auth)
	e.PUT("/worker/:id", workerCtrl.UpdateWorker, authMW.Auth)
	e.DELETE("/worker/:id", workerCtrl.DeleteWorker, authMW.FreshAuth)
}
