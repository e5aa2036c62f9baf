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

func runTeamRouter(e *echo.Echo, dbConn *pgxpool.Pool, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	teamRepository := repositories.NewTeamRepository(dbConn)
	teamService := services.NewTeamService(teamRepository, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)

	e.GET("/teams", teamCtrl.GetTeams, authMW.Auth)
	e.GET("/team/:id", teamCtrl.FindTeam, authMW.Auth)
	e.POST("/team", teamCtrl.CreateTeam, authMW.Auth)
	e.PUT("/team/:id", teamCtrl.UpdateTeam, authMW.Auth)
	e.DELETE("/team/:id", teamCtrl.DeleteTeam, authMW.FreshAuth)
}
