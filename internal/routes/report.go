package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup.GET("/report", reportController.GetReport, authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager))
}
