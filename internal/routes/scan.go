package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runScanRouter(api *echo.Group, scanService services.ScanServiceInterface, logger *zap.Logger) {
	scanController := controllers.NewScanController(scanService, logger)

	api.POST("/scan", scanController.Resolve)
}
