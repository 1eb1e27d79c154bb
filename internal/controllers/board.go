package controllers

import (
	"net/http"

	"gearguard/internal/board"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BoardController struct {
	boardService services.BoardServiceInterface
	logger       *zap.Logger
}

func NewBoardController(boardService services.BoardServiceInterface, logger *zap.Logger) *BoardController {
	return &BoardController{boardService: boardService, logger: logger}
}

// boardFilterFromQuery reads the board criteria straight off the query string:
// ?equipment_id=...&type=preventive&team_id=...&overdue=true&search=pump
func boardFilterFromQuery(ctx echo.Context) board.Filter {
	return board.Filter{
		EquipmentID: ctx.QueryParam("equipment_id"),
		Type:        ctx.QueryParam("type"),
		TeamID:      ctx.QueryParam("team_id"),
		OverdueOnly: ctx.QueryParam("overdue") == "true",
		Search:      ctx.QueryParam("search"),
	}
}

func (c *BoardController) GetBoard(ctx echo.Context) error {
	res, err := c.boardService.GetBoard(ctx.Request().Context(), boardFilterFromQuery(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "board built", http.StatusOK)
}

func (c *BoardController) GetList(ctx echo.Context) error {
	res, err := c.boardService.GetList(ctx.Request().Context(), boardFilterFromQuery(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests listed", http.StatusOK, uint64(len(res)))
}

func (c *BoardController) GetCalendar(ctx echo.Context) error {
	res, err := c.boardService.GetCalendar(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calendar built", http.StatusOK)
}

func (c *BoardController) GetNotifications(ctx echo.Context) error {
	res, err := c.boardService.GetNotifications(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "notifications built", http.StatusOK)
}
