package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/middleware"
)

// MenuController handles meal menu endpoints
type MenuController struct {
	menuService     *services.MenuService
	feedbackService *services.FeedbackService
}

// NewMenuController creates a new MenuController
func NewMenuController(menuService *services.MenuService, feedbackService *services.FeedbackService) *MenuController {
	return &MenuController{
		menuService:     menuService,
		feedbackService: feedbackService,
	}
}

// withRatings decorates menu responses with their feedback aggregates.
// A menu whose aggregate cannot be loaded is returned without one.
func (c *MenuController) withRatings(ctx *gin.Context, responses []dto.MenuResponse) []dto.MenuResponse {
	for i := range responses {
		average, count, err := c.feedbackService.GetMenuRatingSummary(ctx, responses[i].ID)
		if err != nil {
			continue
		}
		responses[i].AverageRating = average
		responses[i].TotalFeedbacks = count
	}
	return responses
}

// PublishMenu handles menu publishing
// @Summary Publish a menu
// @Description Publishes a meal menu with its items; one active menu per date and meal type
// @Tags menus
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuRequest true "Menu information"
// @Success 201 {object} dto.APIResponse{data=dto.MenuResponse} "Menu published"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Active menu already exists for date and meal type"
// @Router /menus [post]
func (c *MenuController) PublishMenu(ctx *gin.Context) {
	var req dto.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	menuDate, err := time.Parse(dto.MenuDateLayout, req.MenuDate)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid menu date")
		errorDetail = errorDetail.WithField("menuDate", "Must be a date in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mealType, err := models.ParseMealType(req.MealType)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid meal type")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	menu, err := c.menuService.PublishMenu(ctx, req.ToModel(menuDate, mealType))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewMenuResponse(menu)))
}

// GetMenuByID retrieves a menu with its items
// @Summary Get menu by ID
// @Tags menus
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} dto.APIResponse{data=dto.MenuResponse}
// @Failure 404 {object} dto.APIResponse "Menu not found"
// @Router /menus/{id} [get]
func (c *MenuController) GetMenuByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	menu, err := c.menuService.GetMenuByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMenuResponse(menu)))
}

// GetTodaysMenus lists the menus for today
// @Summary List today's menus
// @Tags menus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuResponse}
// @Router /menus/today [get]
func (c *MenuController) GetTodaysMenus(ctx *gin.Context) {
	menus, err := c.menuService.GetTodaysMenus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.withRatings(ctx, dto.NewMenuResponses(menus))))
}

// GetUpcomingMenus lists menus over the look-ahead window
// @Summary List upcoming menus
// @Description Menus from today through the next week
// @Tags menus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuResponse}
// @Router /menus/upcoming [get]
func (c *MenuController) GetUpcomingMenus(ctx *gin.Context) {
	menus, err := c.menuService.GetUpcomingMenus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMenuResponses(menus)))
}

// GetMenusForDate lists menus for a calendar date
// @Summary List menus by date
// @Tags menus
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuResponse}
// @Failure 400 {object} dto.APIResponse "Invalid date"
// @Router /menus/date/{date} [get]
func (c *MenuController) GetMenusForDate(ctx *gin.Context) {
	date, err := time.Parse(dto.MenuDateLayout, ctx.Param("date"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithField("date", "Must be a date in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	menus, err := c.menuService.GetMenusForDate(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.withRatings(ctx, dto.NewMenuResponses(menus))))
}

// GetWeekMenus lists menus for a seven-day window
// @Summary List menus for a week
// @Description Active menus from the start date through the following six days
// @Tags menus
// @Produce json
// @Param startDate path string true "Start date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuResponse}
// @Failure 400 {object} dto.APIResponse "Invalid start date"
// @Router /menus/week/{startDate} [get]
func (c *MenuController) GetWeekMenus(ctx *gin.Context) {
	start, err := time.Parse(dto.MenuDateLayout, ctx.Param("startDate"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid start date")
		errorDetail = errorDetail.WithField("startDate", "Must be a date in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	menus, err := c.menuService.GetWeekMenus(ctx, start)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMenuResponses(menus)))
}

// GetMealTypes lists the supported meal types
// @Summary List meal types
// @Tags menus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MealTypeResponse}
// @Router /menus/meal-types [get]
func (c *MenuController) GetMealTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMealTypeResponses(models.MealTypes)))
}

// GetCurrentMenu finds the active menu for a date and meal type
// @Summary Get the active menu for a date and meal type
// @Tags menus
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param mealType path string true "Meal type" Enums(BREAKFAST, LUNCH, SNACKS, DINNER)
// @Success 200 {object} dto.APIResponse{data=dto.MenuResponse}
// @Failure 404 {object} dto.APIResponse "No active menu for date and meal type"
// @Router /menus/date/{date}/meal-type/{mealType} [get]
func (c *MenuController) GetCurrentMenu(ctx *gin.Context) {
	date, err := time.Parse(dto.MenuDateLayout, ctx.Param("date"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithField("date", "Must be a date in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mealType, err := models.ParseMealType(ctx.Param("mealType"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid meal type")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	menu, err := c.menuService.GetCurrentMenu(ctx, date, mealType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := c.withRatings(ctx, []dto.MenuResponse{dto.NewMenuResponse(menu)})
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses[0]))
}
