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

func runReportRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	userOrderRepository := repositories.NewUserOrderRepository(dbConn)
	userOrderService := services.NewUserOrderService(userOrderRepository, logger)
	reportCtrl := controllers.NewReportController(userOrderService, logger)

	e.GET("/reports/user_orders", reportCtrl.ExportUserOrders, authMW.Auth)
}
