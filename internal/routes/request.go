package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/middleware"
)

func runRequestRouter(secureGroup *echo.Group, requestService services.RequestServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	requestController := controllers.NewRequestController(requestService, logger)

	secureGroup.GET("/requests", requestController.GetRequests)
	secureGroup.GET("/requests/:id", requestController.FindRequest)
	secureGroup.POST("/requests", requestController.CreateRequest)
	secureGroup.PATCH("/requests/:id", requestController.UpdateRequest)
	secureGroup.POST("/requests/:id/transition", requestController.TransitionRequest)
	// Pick-up has its own member/role checks in the service; any authenticated
	// technician can try.
	secureGroup.POST("/requests/:id/pickup", requestController.PickUpRequest)
	secureGroup.DELETE("/requests/:id", requestController.DeleteRequest, authMW.RequireRoles(constants.RoleAdmin, constants.RoleManager))
}
