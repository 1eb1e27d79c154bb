package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	manageEquipment := authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager)

	secureGroup.GET("/equipment", equipmentController.GetEquipments)
	secureGroup.GET("/equipment/:id", equipmentController.FindEquipment)
	secureGroup.POST("/equipment", equipmentController.CreateEquipment, manageEquipment)
	secureGroup.PATCH("/equipment/:id", equipmentController.UpdateEquipment, manageEquipment)
	secureGroup.POST("/equipment/:id/scrap", equipmentController.ScrapEquipment, manageEquipment)
	secureGroup.DELETE("/equipment/:id", equipmentController.DeleteEquipment, authMW.RequireRoles(constants.RoleAdmin))
}
