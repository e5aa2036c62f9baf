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

func runUserOrderRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	userOrderRepository := repositories.NewUserOrderRepository(dbConn)
	userOrderService := services.NewUserOrderService(userOrderRepository, logger)
	userOrderCtrl := controllers.NewUserOrderController(userOrderService, logger)

	e.GET("/user_orders", userOrderCtrl.GetUserOrders, authMW.Auth)
	e.GET("/user_order/:id", userOrderCtrl.FindUserOrder, authMW.Auth)
	e.POST("/user_order", userOrderCtrl.CreateUserOrder, authMW.Auth)
	e.PUT("/user_order/:id", userOrderCtrl.UpdateUserOrder, authMW.Auth)
	e.DELETE("/user_order/:id", userOrderCtrl.DeleteUserOrder, authMW.FreshAuth)
}
