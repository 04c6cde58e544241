package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/app/services"
	"github.com/schoollink/schoollink-api/internal/middleware"
)

// SchoolController handles institution directory endpoints
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController instance
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// ListSchools godoc
// @Summary Distinct institutions present in the student records
// @Tags schools
// @Produce json
// @Success 200 {object} dto.SchoolListResponse
// @Router /schools/list [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	schools, err := c.schoolService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SchoolListResponse{Schools: schools})
}
