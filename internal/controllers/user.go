package controllers

import (
	"net/http"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

// GetUsers lists users, optionally narrowed by ?role=technician. The board UI
// uses this to populate assignee pickers.
func (c *UserController) GetUsers(ctx echo.Context) error {
	role := ctx.QueryParam("role")

	res, err := c.userService.GetUsers(ctx.Request().Context(), role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "users listed", http.StatusOK, uint64(len(res)))
}

func (c *UserController) FindUser(ctx echo.Context) error {
	res, err := c.userService.FindUser(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "user found", http.StatusOK)
}
