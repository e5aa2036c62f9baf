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

func runUserRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	userRepository := repositories.NewUserRepository(dbConn)
	userService := services.NewUserService(userRepository, logger)
	userCtrl := controllers.NewUserController(userService, logger)

	e.GET("/users", userCtrl.GetUsers, authMW.Auth)
	e.GET("/user/:id", userCtrl.FindUser, authMW.Auth)
	e.POST("/user", userCtrl.CreateUser, authMW.Auth)
	e.PUT("/user/:id", userCtrl.UpdateUser, authMW.Auth)
	e.DELETE("/user/:id", userCtrl.DeleteUser, authMW.FreshAuth)
}
