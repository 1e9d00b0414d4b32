package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/app/services"
	"github.com/university/advisorfinder/internal/middleware"
)

// LecturerController handles lecturer-related operations
type LecturerController struct {
	lecturerService services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
	}
}

// GetPublicLecturers retrieves all lecturers as public profiles
// @Summary Get all lecturers
// @Description Retrieves the public profiles of all lecturers
// @Tags lecturers
// @Produce json
// @Success 200 {array} dto.LecturerPublicResponse "Lecturer profiles"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/public [get]
func (c *LecturerController) GetPublicLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.GetAllLecturersPublic(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}

// SearchLecturers searches lecturers by keyword
// @Summary Search lecturers
// @Description Searches lecturer names, departments and research interest names for a keyword. An empty keyword returns all lecturers.
// @Tags lecturers
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {array} dto.LecturerPublicResponse "Matching lecturer profiles"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/search [get]
func (c *LecturerController) SearchLecturers(ctx *gin.Context) {
	keyword := ctx.Query("keyword")

	lecturers, err := c.lecturerService.SearchLecturersByKeyword(ctx, keyword)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}

// GetLecturersByInterests retrieves lecturers by research interest IDs
// @Summary Get lecturers by interests
// @Description Retrieves lecturers holding any of the given research interest IDs
// @Tags lecturers
// @Produce json
// @Param interestIds query string true "Comma-separated research interest IDs"
// @Success 200 {array} dto.LecturerPublicResponse "Matching lecturer profiles"
// @Failure 400 {object} dto.ErrorResponse "Invalid interest IDs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/by-interests [get]
func (c *LecturerController) GetLecturersByInterests(ctx *gin.Context) {
	interestIDs, err := parseIDList(ctx.Query("interestIds"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Interest IDs must be valid numbers"))
		return
	}

	lecturers, err := c.lecturerService.FindLecturersByInterestIDs(ctx, interestIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}

// GetLecturersByCategory retrieves lecturers by research category
// @Summary Get lecturers by category
// @Description Retrieves lecturers holding at least one research interest in the given category
// @Tags lecturers
// @Produce json
// @Param categoryId path int true "Research category ID"
// @Success 200 {array} dto.LecturerPublicResponse "Matching lecturer profiles"
// @Failure 400 {object} dto.ErrorResponse "Invalid category ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/by-category/{categoryId} [get]
func (c *LecturerController) GetLecturersByCategory(ctx *gin.Context) {
	categoryID, err := strconv.ParseInt(ctx.Param("categoryId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Category ID must be a valid number"))
		return
	}

	lecturers, err := c.lecturerService.FindLecturersByCategory(ctx, categoryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}

// GetLecturersByDepartment retrieves lecturers by department
// @Summary Get lecturers by department
// @Description Retrieves lecturers by department name, matched case-insensitively
// @Tags lecturers
// @Produce json
// @Param department query string true "Department name"
// @Success 200 {array} dto.LecturerPublicResponse "Matching lecturer profiles"
// @Failure 400 {object} dto.ErrorResponse "Missing department parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/by-department [get]
func (c *LecturerController) GetLecturersByDepartment(ctx *gin.Context) {
	department := ctx.Query("department")
	if department == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Department parameter is required"))
		return
	}

	lecturers, err := c.lecturerService.FindLecturersByDepartment(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}

// GetLecturerContact retrieves a lecturer's contact details
// @Summary Get lecturer contact details
// @Description Retrieves a lecturer's contact details. Only registered students may view them.
// @Tags lecturers
// @Produce json
// @Param id path int true "Lecturer ID"
// @Param studentEmail query string true "Requesting student's email"
// @Success 200 {object} dto.LecturerContactResponse "Lecturer contact details"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecturer ID or missing student email"
// @Failure 403 {object} dto.ErrorResponse "Requester is not a registered student"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/{id}/contact [get]
func (c *LecturerController) GetLecturerContact(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Lecturer ID must be a valid number"))
		return
	}

	studentEmail := ctx.Query("studentEmail")
	if studentEmail == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student email parameter is required"))
		return
	}

	contact, err := c.lecturerService.GetLecturerContact(ctx, id, studentEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, contact)
}

// RegisterLecturer creates or updates a lecturer profile
// @Summary Register a lecturer
// @Description Creates a lecturer profile, or updates it when an ID is given. Unknown research interest names are added to the catalog.
// @Tags lecturers
// @Accept json
// @Produce json
// @Param request body dto.SaveLecturerRequest true "Lecturer information"
// @Success 200 {object} models.Lecturer "Saved lecturer"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecturer data"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found (update)"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/register [post]
func (c *LecturerController) RegisterLecturer(ctx *gin.Context) {
	var req dto.SaveLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid lecturer data: "+err.Error()))
		return
	}

	lecturer, err := c.lecturerService.SaveLecturer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturer)
}

// DeleteLecturer removes a lecturer profile
// @Summary Delete a lecturer
// @Description Removes a lecturer profile and its research interest links
// @Tags lecturers
// @Produce json
// @Param id path int true "Lecturer ID"
// @Success 200 {object} dto.SuccessResponse "Lecturer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecturer ID"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/{id} [delete]
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Lecturer ID must be a valid number"))
		return
	}

	if err := c.lecturerService.DeleteLecturer(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Lecturer deleted successfully"})
}

// parseIDList parses a comma-separated list of numeric IDs. Empty input
// yields an empty list.
func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return []int64{}, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
