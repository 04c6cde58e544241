package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/app/services"
	"github.com/schoollink/schoollink-api/internal/middleware"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

// maxPhotoBytes caps the accepted upload body at 10 MiB.
const maxPhotoBytes = 10 << 20

// PhotoController handles student photo endpoints
type PhotoController struct {
	photoService services.PhotoService
}

// NewPhotoController creates a new PhotoController instance
func NewPhotoController(photoService services.PhotoService) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

// UploadTarget godoc
// @Summary Resolve the storage target for a student photo
// @Tags photos
// @Accept json
// @Produce json
// @Param payload body dto.UploadTargetRequest true "Student OpenEMIS ID"
// @Success 200 {object} dto.UploadTargetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /photos/upload-target [post]
func (c *PhotoController) UploadTarget(ctx *gin.Context) {
	var req dto.UploadTargetRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	target, err := c.photoService.UploadTarget(req.StudentOpenEMISID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, target)
}

// UploadPhoto godoc
// @Summary Store a student's JPEG portrait
// @Description Accepts the raw JPEG bytes as the request body; a 60x60 thumbnail is generated in the background
// @Tags photos
// @Accept jpeg
// @Produce json
// @Param studentOpenEmisId query string true "Student OpenEMIS ID"
// @Success 200 {object} dto.PhotoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /photos/upload [post]
func (c *PhotoController) UploadPhoto(ctx *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxPhotoBytes+1))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Failed to read photo body"))
		return
	}
	if len(data) > maxPhotoBytes {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Photo exceeds the 10 MiB limit"))
		return
	}

	url, err := c.photoService.Upload(ctx.Request.Context(), ctx.Query("studentOpenEmisId"), data)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PhotoResponse{Success: true, PhotoURL: url})
}

// GetPhoto godoc
// @Summary Public URL of a stored student photo
// @Tags photos
// @Produce json
// @Param studentOpenEmisId path string true "Student OpenEMIS ID"
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /photos/{studentOpenEmisId} [get]
func (c *PhotoController) GetPhoto(ctx *gin.Context) {
	url, err := c.photoService.Lookup(ctx.Request.Context(), ctx.Param("studentOpenEmisId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PhotoResponse{Success: true, PhotoURL: url})
}
