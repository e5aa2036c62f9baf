package routes

import (
	"workshop-system/internal/repositories"
	"workshop-system/pkg/middleware"
	"workshop-system/pkg/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает все маршруты приложения. Блоклист передаётся снаружи:
// main выбирает реализацию (in-memory или redis) по конфигурации.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	blocklist repositories.TokenBlocklistInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: начало создания маршрутов")

	authMW := middleware.NewAuthMiddleware(jwtSvc, blocklist, logger)

	runAuthRouter(e, dbConn, blocklist, jwtSvc, authMW, logger)
	runWorkerRouter(e, dbConn, authMW, logger)
	runWorkerPositionRouter(e, dbConn, authMW, logger)
	runTeamRouter(e, dbConn, authMW, logger)
	runUserRouter(e, dbConn, authMW, logger)
	runEquipmentTypeRouter(e, dbConn, authMW, logger)
	runEquipmentConditionRouter(e, dbConn, authMW, logger)
	runEquipmentRouter(e, dbConn, authMW, logger)
	runLaserCutterRouter(e, dbConn, authMW, logger)
	runUserOrderRouter(e, dbConn, authMW, logger)
	runLaserCutterOrderRouter(e, dbConn, authMW, logger)
	runLaserCutterOrderEvaluationRouter(e, dbConn, authMW, logger)
	runEquipmentRepairRouter(e, dbConn, authMW, logger)
	runLaserCutterRepairRouter(e, dbConn, authMW, logger)
	runReportRouter(e, dbConn, authMW, logger)

	logger.Info("InitRouter: создание маршрутов завершено")
}
