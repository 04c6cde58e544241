package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/app/services"
	"github.com/schoollink/schoollink-api/internal/middleware"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

// ScanController handles daily attendance scan endpoints
type ScanController struct {
	scanService services.ScanService
}

// NewScanController creates a new ScanController instance
func NewScanController(scanService services.ScanService) *ScanController {
	return &ScanController{
		scanService: scanService,
	}
}

// TodayScans godoc
// @Summary Latest gate scans for the current UTC day
// @Description Returns RFC 3339 timestamps of the latest gate-in and gate-out per student; students without scans today are omitted
// @Tags scans
// @Accept json
// @Produce json
// @Param student_ids query string false "Comma-separated student IDs (GET form)"
// @Param payload body dto.ScanBatchRequest false "Student ID batch (POST form)"
// @Success 200 {object} dto.ScanTodayResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /scans/today [get]
func (c *ScanController) TodayScans(ctx *gin.Context) {
	rawIDs, ok := c.batchIDs(ctx)
	if !ok {
		return
	}

	result, err := c.scanService.Today(ctx.Request.Context(), rawIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ScanStatus godoc
// @Summary Today's scan status keyed by student ID
// @Description Returns an entry for every requested ID with 12-hour gate times; unscanned students get an empty entry
// @Tags scans
// @Accept json
// @Produce json
// @Param student_ids query string false "Comma-separated student IDs (GET form)"
// @Param payload body dto.ScanBatchRequest false "Student ID batch (POST form)"
// @Success 200 {object} dto.ScanStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /scans/status [get]
func (c *ScanController) ScanStatus(ctx *gin.Context) {
	rawIDs, ok := c.batchIDs(ctx)
	if !ok {
		return
	}

	result, err := c.scanService.Status(ctx.Request.Context(), rawIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// batchIDs extracts the raw ID batch from either wire form: a comma-separated
// student_ids query parameter on GET, or a JSON body on POST. Writes the error
// response itself and returns ok=false on a malformed body.
func (c *ScanController) batchIDs(ctx *gin.Context) ([]string, bool) {
	if ctx.Request.Method == http.MethodGet {
		raw := ctx.Query("student_ids")
		if raw == "" {
			return nil, true
		}
		return strings.Split(raw, ","), true
	}

	var req dto.ScanBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request format"))
		return nil, false
	}
	return req.StudentIDs, true
}
