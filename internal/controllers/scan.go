package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ScanController struct {
	scanService services.ScanServiceInterface
	logger      *zap.Logger
}

func NewScanController(scanService services.ScanServiceInterface, logger *zap.Logger) *ScanController {
	return &ScanController{scanService: scanService, logger: logger}
}

// Resolve accepts whatever a QR scanner produced and answers with the matching
// equipment record.
func (c *ScanController) Resolve(ctx echo.Context) error {
	var payload dto.ResolveScanDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.scanService.Resolve(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "scan resolved", http.StatusOK)
}
