package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runTeamRouter(secureGroup *echo.Group, teamService services.TeamServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	teamController := controllers.NewTeamController(teamService, logger)
	manageTeams := authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager)

	secureGroup.GET("/teams", teamController.GetTeams)
	secureGroup.GET("/teams/:id", teamController.FindTeam)
	secureGroup.POST("/teams", teamController.CreateTeam, manageTeams)
	secureGroup.PATCH("/teams/:id", teamController.UpdateTeam, manageTeams)
	secureGroup.DELETE("/teams/:id", teamController.DeleteTeam, authMW.RequireRoles(constants.RoleAdmin))
}
