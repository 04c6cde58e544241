package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/app/services"
	"github.com/schoollink/schoollink-api/internal/middleware"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
	"github.com/schoollink/schoollink-api/internal/pkg/helpers"
)

// StudentController handles student record endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController instance
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// SearchStudents godoc
// @Summary Search students by name or exact ID
// @Description Searches student and guardian names; an exact OpenEMIS ID match returns that single record
// @Tags students
// @Produce json
// @Param q query string true "Search query (min 3 chars unless an exact ID)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	page, limit := helpers.ParsePagingParams(ctx)

	result, err := c.studentService.Search(ctx.Request.Context(), ctx.Query("q"), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SearchByInstitution godoc
// @Summary Search students by institution name
// @Description Paginated substring search over the institution name column
// @Tags students
// @Produce json
// @Param q query string true "Institution name fragment (min 3 chars)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/by-institution [get]
func (c *StudentController) SearchByInstitution(ctx *gin.Context) {
	page, limit := helpers.ParsePagingParams(ctx)

	result, err := c.studentService.SearchByInstitution(ctx.Request.Context(), ctx.Query("q"), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CountStudents godoc
// @Summary Total number of student records
// @Tags students
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /students/count [get]
func (c *StudentController) CountStudents(ctx *gin.Context) {
	total, err := c.studentService.Count(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{TotalRecords: total})
}

// ListBySchool godoc
// @Summary Roster of one institution
// @Description Returns the unpaginated summary projection for every student of the institution
// @Tags students
// @Produce json
// @Param institutionCode query string true "Institution code"
// @Success 200 {object} dto.StudentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/by-school [get]
func (c *StudentController) ListBySchool(ctx *gin.Context) {
	students, err := c.studentService.ListBySchool(ctx.Request.Context(), ctx.Query("institutionCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Items:      students,
		Total:      int64(len(students)),
		Page:       1,
		TotalPages: 1,
	})
}

// SchoolStats godoc
// @Summary Headcount and gender breakdown of one institution
// @Tags students
// @Produce json
// @Param institutionCode query string true "Institution code"
// @Success 200 {object} models.SchoolStats
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/school-stats [get]
func (c *StudentController) SchoolStats(ctx *gin.Context) {
	stats, err := c.studentService.SchoolStats(ctx.Request.Context(), ctx.Query("institutionCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetStudent godoc
// @Summary Full profile of one student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("student ID must be a number"))
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentResponse{Student: student})
}

// UpdateStudent godoc
// @Summary Update or insert a student record
// @Description Updates by StudentID, or upserts by StudentOpenEMIS_ID when no StudentID is given. Unknown fields are ignored.
// @Tags students
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} true "Field map; must carry StudentID or StudentOpenEMIS_ID"
// @Success 200 {object} dto.UpdateStudentResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/update [post]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request format"))
		return
	}

	result, err := c.studentService.Update(ctx.Request.Context(), payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
