package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runUserRouter(secureGroup *echo.Group, userService services.UserServiceInterface, logger *zap.Logger) {
	userController := controllers.NewUserController(userService, logger)

	secureGroup.GET("/users", userController.GetUsers)
	secureGroup.GET("/users/:id", userController.FindUser)
}
