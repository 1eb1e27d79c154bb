package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runBoardRouter(secureGroup *echo.Group, boardService services.BoardServiceInterface, logger *zap.Logger) {
	boardController := controllers.NewBoardController(boardService, logger)

	secureGroup.GET("/board", boardController.GetBoard)
	secureGroup.GET("/board/list", boardController.GetList)
	secureGroup.GET("/board/calendar", boardController.GetCalendar)
	secureGroup.GET("/notifications", boardController.GetNotifications)
}
