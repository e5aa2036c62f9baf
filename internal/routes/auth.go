package routes

import (
	"workshop-system/internal/controllers"
	"workshop-system/internal/repositories"
	"workshop-system/internal/services"
	"workshop-system/pkg/middleware"
	"workshop-system/pkg/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// runAuthRouter вешает единственные две открытые точки входа (/register и
// /login) и токеновые операции. /refresh не ходит через Auth-middleware:
// та отвергает refresh-токены, контроллер разбирает заголовок сам.
func runAuthRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	blocklist repositories.TokenBlocklistInterface,
	jwtSvc service.JWTService,
	authMW *middleware.AuthMiddleware,
	logger *zap.Logger,
) {
	workerRepository := repositories.NewWorkerRepository(dbConn)
	txManager := repositories.NewTxManager(dbConn)
	authService := services.NewAuthService(workerRepository, blocklist, txManager, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, jwtSvc, logger)

	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.POST("/logout", authCtrl.Logout, authMW.Auth)
	e.POST("/refresh", authCtrl.Refresh)
}
