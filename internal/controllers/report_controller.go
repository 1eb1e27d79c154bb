package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetReport serves the maintenance report as JSON, or as an XLSX workbook when
// ?format=xlsx is asked for.
func (c *ReportController) GetReport(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))

	data, err := c.reportService.GetReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "report built", http.StatusOK)
}

var registerHeaders = []string{
	"Subject", "Type", "Stage", "Equipment", "Team", "Assigned To",
	"Scheduled", "Duration (h)", "Overdue", "Created",
}

var teamStatsHeaders = []string{
	"Team", "Total", "Open", "Repaired", "Completion Rate (%)",
}

func registerRowToSlice(row dto.RequestRegisterRowDTO) []interface{} {
	var duration, overdue string
	if row.DurationHours != nil {
		duration = fmt.Sprintf("%.2f", *row.DurationHours)
	}
	if row.Overdue {
		overdue = "yes"
	}
	return []interface{}{
		row.Subject, row.Type, row.Stage, row.EquipmentName, row.TeamName,
		row.AssignedTo, row.ScheduledDate, duration, overdue, row.CreatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data *dto.ReportDTO) error {
	f := excelize.NewFile()
	registerSheet := "Requests"
	f.SetSheetName("Sheet1", registerSheet)
	f.SetSheetRow(registerSheet, "A1", &registerHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(registerSheet, "A1", "J1", style)

	for i, item := range data.Register {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := registerRowToSlice(item)
		f.SetSheetRow(registerSheet, cell, &row)
	}
	f.SetColWidth(registerSheet, "A", "A", 40)
	f.SetColWidth(registerSheet, "D", "F", 25)
	f.SetColWidth(registerSheet, "G", "J", 14)

	statsSheet := "Team Stats"
	f.NewSheet(statsSheet)
	f.SetSheetRow(statsSheet, "A1", &teamStatsHeaders)
	f.SetCellStyle(statsSheet, "A1", "E1", style)
	for i, st := range data.TeamStats {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{st.TeamName, st.Total, st.Open, st.Repaired, st.CompletionRate}
		f.SetSheetRow(statsSheet, cell, &row)
	}
	f.SetColWidth(statsSheet, "A", "A", 30)

	fileName := fmt.Sprintf("maintenance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
