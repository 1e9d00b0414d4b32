package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/app/services"
	"github.com/university/advisorfinder/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent handles student registration
// @Summary Register a new student
// @Description Registers a student account with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 200 {object} dto.RegisterStudentResponse "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration data"
// @Failure 409 {object} dto.ErrorResponse "Email or student ID already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/register [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid registration data: "+err.Error()))
		return
	}

	student, err := c.studentService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterStudentResponse{
		Message:   "Registration successful",
		StudentID: student.ID,
	})
}

// CheckEmail reports whether a student email is registered
// @Summary Check student email
// @Description Reports whether a student with the given email is registered
// @Tags students
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {boolean} bool "Registration status"
// @Failure 400 {object} dto.ErrorResponse "Missing email parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/check-email [get]
func (c *StudentController) CheckEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email parameter is required"))
		return
	}

	exists, err := c.studentService.ExistsByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exists)
}

// GetProfile retrieves a student profile by email
// @Summary Get student profile
// @Description Retrieves the profile of the student registered under the given email
// @Tags students
// @Produce json
// @Param email query string true "Student email"
// @Success 200 {object} models.Student "Student profile"
// @Failure 400 {object} dto.ErrorResponse "Missing email parameter"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email parameter is required"))
		return
	}

	student, err := c.studentService.FindByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// GetAllStudents retrieves all registered students
// @Summary Get all students
// @Description Retrieves a list of all registered students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students"
// @Failure 400 {object} dto.ErrorResponse "Failed to retrieve students"
// @Router /students/all [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Failed to retrieve students"))
		return
	}

	ctx.JSON(http.StatusOK, students)
}
