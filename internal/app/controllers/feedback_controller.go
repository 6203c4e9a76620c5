package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/middleware"
)

// FeedbackController handles meal rating endpoints
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback handles feedback submission
// @Summary Submit meal feedback
// @Description Records a 1-5 rating for a menu; one rating per student per menu
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback information"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback recorded"
// @Failure 400 {object} dto.APIResponse "Invalid rating or inactive student"
// @Failure 404 {object} dto.APIResponse "Student or menu not found"
// @Failure 409 {object} dto.APIResponse "Student already rated this menu"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewFeedbackResponse(feedback)))
}

// GetFeedbackForMenu lists ratings for one menu
// @Summary List feedback by menu
// @Tags feedback
// @Produce json
// @Param menuId path int true "Menu ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse}
// @Failure 404 {object} dto.APIResponse "Menu not found"
// @Router /feedback/menu/{menuId} [get]
func (c *FeedbackController) GetFeedbackForMenu(ctx *gin.Context) {
	menuID, ok := pathID(ctx, "menuId")
	if !ok {
		return
	}

	feedbacks, err := c.feedbackService.GetFeedbackForMenu(ctx, menuID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFeedbackResponses(feedbacks)))
}

// GetFeedbackByStudent lists one student's ratings
// @Summary List feedback by student
// @Tags feedback
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /feedback/student/{studentId} [get]
func (c *FeedbackController) GetFeedbackByStudent(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	feedbacks, err := c.feedbackService.GetFeedbackByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFeedbackResponses(feedbacks)))
}

// GetMenuRatingSummary aggregates ratings for one menu
// @Summary Menu rating summary
// @Description Average rating and feedback count; average is null without feedback
// @Tags feedback
// @Produce json
// @Param menuId path int true "Menu ID"
// @Success 200 {object} dto.APIResponse{data=dto.MenuRatingSummaryResponse}
// @Failure 404 {object} dto.APIResponse "Menu not found"
// @Router /feedback/menu/{menuId}/average-rating [get]
func (c *FeedbackController) GetMenuRatingSummary(ctx *gin.Context) {
	menuID, ok := pathID(ctx, "menuId")
	if !ok {
		return
	}

	average, count, err := c.feedbackService.GetMenuRatingSummary(ctx, menuID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MenuRatingSummaryResponse{
		MenuID:        menuID,
		AverageRating: average,
		FeedbackCount: count,
	}))
}

// GetNegativeFeedback lists ratings needing follow-up
// @Summary List negative feedback
// @Description Ratings of 2 and below, newest first
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse}
// @Router /feedback/negative [get]
func (c *FeedbackController) GetNegativeFeedback(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.GetNegativeFeedback(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFeedbackResponses(feedbacks)))
}

// GetPositiveFeedback lists high ratings
// @Summary List positive feedback
// @Description Ratings of 4 and above, newest first
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse}
// @Router /feedback/positive [get]
func (c *FeedbackController) GetPositiveFeedback(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.GetPositiveFeedback(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewFeedbackResponses(feedbacks)))
}
