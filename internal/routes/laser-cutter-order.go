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

func runLaserCutterOrderRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	laserCutterOrderRepository := repositories.NewLaserCutterOrderRepository(dbConn)
	laserCutterOrderService := services.NewLaserCutterOrderService(laserCutterOrderRepository, logger)
	laserCutterOrderCtrl := controllers.NewLaserCutterOrderController(laserCutterOrderService, logger)

	e.GET("/laser_cutter_orders", laserCutterOrderCtrl.GetLaserCutterOrders, authMW.Auth)
	e.GET("/laser_cutter_order/:id", laserCutterOrderCtrl.FindLaserCutterOrder, authMW.Auth)
	e.POST("/laser_cutter_order", laserCutterOrderCtrl.CreateLaserCutterOrder, authMW.Auth)
	e.PUT("/laser_cutter_order/:id", laserCutterOrderCtrl.UpdateLaserCutterOrder, authMW.Auth)
	e.DELETE("/laser_cutter_order/:id", laserCutterOrderCtrl.DeleteLaserCutterOrder, authMW.FreshAuth)
}
