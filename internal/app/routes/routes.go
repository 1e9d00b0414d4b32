package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/university/advisorfinder/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	lecturerController *controllers.LecturerController,
	researchController *controllers.ResearchController,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Student routes
	students := api.Group("/students")
	{
		students.POST("/register", studentController.RegisterStudent)
		students.GET("/check-email", studentController.CheckEmail)
		students.GET("/profile", studentController.GetProfile)
		students.GET("/all", studentController.GetAllStudents)
	}

	// Lecturer routes. Contact details are the only gated surface: the
	// handler checks the requesting student's registration.
	lecturers := api.Group("/lecturers")
	{
		lecturers.GET("/public", lecturerController.GetPublicLecturers)
		lecturers.GET("/search", lecturerController.SearchLecturers)
		lecturers.GET("/by-interests", lecturerController.GetLecturersByInterests)
		lecturers.GET("/by-category/:categoryId", lecturerController.GetLecturersByCategory)
		lecturers.GET("/by-department", lecturerController.GetLecturersByDepartment)
		lecturers.GET("/:id/contact", lecturerController.GetLecturerContact)
		lecturers.POST("/register", lecturerController.RegisterLecturer)
		lecturers.DELETE("/:id", lecturerController.DeleteLecturer)
	}

	// Research catalog routes
	research := api.Group("/research")
	{
		research.GET("/categories", researchController.GetAllCategories)
		research.GET("/interests", researchController.GetAllInterests)
		research.GET("/interests/category/:categoryId", researchController.GetInterestsByCategory)
		research.GET("/interests/search", researchController.SearchInterests)
	}
}
