package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/app/services"
	"github.com/university/advisorfinder/internal/middleware"
)

// ResearchController handles research catalog operations
type ResearchController struct {
	researchService services.ResearchService
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchService services.ResearchService) *ResearchController {
	return &ResearchController{
		researchService: researchService,
	}
}

// GetAllCategories retrieves all research categories
// @Summary Get all research categories
// @Description Retrieves a list of all research categories
// @Tags research
// @Produce json
// @Success 200 {array} models.ResearchCategory "Research categories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/categories [get]
func (c *ResearchController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.researchService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// GetAllInterests retrieves all research interests
// @Summary Get all research interests
// @Description Retrieves a list of all research interests with their category names
// @Tags research
// @Produce json
// @Success 200 {array} models.ResearchInterest "Research interests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/interests [get]
func (c *ResearchController) GetAllInterests(ctx *gin.Context) {
	interests, err := c.researchService.GetAllInterests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, interests)
}

// GetInterestsByCategory retrieves the interests filed under a category
// @Summary Get interests by category
// @Description Retrieves the research interests filed under the given category
// @Tags research
// @Produce json
// @Param categoryId path int true "Research category ID"
// @Success 200 {array} models.ResearchInterest "Research interests"
// @Failure 400 {object} dto.ErrorResponse "Invalid category ID"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/interests/category/{categoryId} [get]
func (c *ResearchController) GetInterestsByCategory(ctx *gin.Context) {
	categoryID, err := strconv.ParseInt(ctx.Param("categoryId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Category ID must be a valid number"))
		return
	}

	interests, err := c.researchService.GetInterestsByCategory(ctx, categoryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, interests)
}

// SearchInterests searches research interests by keyword
// @Summary Search research interests
// @Description Searches research interest names and descriptions for a keyword. An empty keyword returns all interests.
// @Tags research
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {array} models.ResearchInterest "Matching research interests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research/interests/search [get]
func (c *ResearchController) SearchInterests(ctx *gin.Context) {
	keyword := ctx.Query("keyword")

	interests, err := c.researchService.SearchInterestsByKeyword(ctx, keyword)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, interests)
}
