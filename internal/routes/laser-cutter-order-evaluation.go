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

func runLaserCutterOrderEvaluationRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	evaluationRepository := repositories.NewLaserCutterOrderEvaluationRepository(dbConn)
	evaluationService := services.NewLaserCutterOrderEvaluationService(evaluationRepository, logger)
	evaluationCtrl := controllers.NewLaserCutterOrderEvaluationController(evaluationService, logger)

	e.GET("/laser_cutter_order_evaluations", evaluationCtrl.GetEvaluations, authMW.Auth)
	e.GET("/laser_cutter_order_evaluation/:id", evaluationCtrl.FindEvaluation, authMW.Auth)
	e.POST("/laser_cutter_order_evaluation", evaluationCtrl.CreateEvaluation, authMW.Auth)
	e.PUT("/laser_cutter_order_evaluation/:id", evaluationCtrl.UpdateEvaluation, authMW.Auth)
	e.DELETE("/laser_cutter_order_evaluation/:id", evaluationCtrl.DeleteEvaluation, authMW.FreshAuth)
}
