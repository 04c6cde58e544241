package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/controllers"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	scanController *controllers.ScanController,
	schoolController *controllers.SchoolController,
	photoController *controllers.PhotoController,
) {
	// The legacy clients call the resource groups at the root, no version prefix.
	students := router.Group("/students")
	{
		students.GET("/search", studentController.SearchStudents)
		students.GET("/by-institution", studentController.SearchByInstitution)
		students.GET("/count", studentController.CountStudents)
		students.GET("/by-school", studentController.ListBySchool)
		students.GET("/school-stats", studentController.SchoolStats)
		students.GET("/:id", studentController.GetStudent)
		students.POST("/update", studentController.UpdateStudent)
	}

	schools := router.Group("/schools")
	{
		schools.GET("/list", schoolController.ListSchools)
	}

	// Scan lookups accept both forms: GET with a comma-separated student_ids
	// parameter, and POST with a JSON batch body.
	scans := router.Group("/scans")
	{
		scans.GET("/today", scanController.TodayScans)
		scans.POST("/today", scanController.TodayScans)
		scans.GET("/status", scanController.ScanStatus)
		scans.POST("/status", scanController.ScanStatus)
	}

	photos := router.Group("/photos")
	{
		photos.POST("/upload-target", photoController.UploadTarget)
		photos.POST("/upload", photoController.UploadPhoto)
		photos.GET("/:studentOpenEmisId", photoController.GetPhoto)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.ErrorCodeMethodNotAllowed, "Method not allowed"))
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeRouteNotFound, "Route not found"))
	})
}
