package dto

import (
	"time"

	"github.com/deepam/hostelmess/internal/app/models"
)

// CreateFeedbackRequest is the payload for rating a menu
type CreateFeedbackRequest struct {
	StudentID    int64   `json:"studentId" binding:"required" example:"1"`
	MenuID       int64   `json:"menuId" binding:"required" example:"1"`
	Rating       int     `json:"rating" binding:"required,gte=1,lte=5" example:"4"`
	Comments     *string `json:"comments,omitempty" binding:"omitempty,max=1000" example:"Dosa was fresh and crispy"`
	FeedbackType string  `json:"feedbackType,omitempty" binding:"omitempty,oneof=GENERAL TASTE HYGIENE SERVICE SUGGESTION COMPLAINT" example:"TASTE"`
}

// FeedbackResponse is the outbound representation of a feedback entry
type FeedbackResponse struct {
	ID            int64   `json:"id" example:"1"`
	StudentID     int64   `json:"studentId" example:"1"`
	StudentName   string  `json:"studentName,omitempty" example:"Priya Sharma"`
	MenuID        int64   `json:"menuId" example:"1"`
	MenuDate      string  `json:"menuDate,omitempty" example:"2025-06-02"`
	MealType      string  `json:"mealType,omitempty" example:"BREAKFAST"`
	Rating        int     `json:"rating" example:"4"`
	Comments      *string `json:"comments,omitempty" example:"Dosa was fresh and crispy"`
	FeedbackType  string  `json:"feedbackType" example:"TASTE"`
	FeedbackLabel string  `json:"feedbackLabel" example:"Taste"`
	IsPositive    bool    `json:"isPositive" example:"true"`

	SubmittedAt time.Time `json:"submittedAt" example:"2025-06-02T08:15:00.000Z"`
}

// MenuRatingSummaryResponse aggregates feedback for a single menu
type MenuRatingSummaryResponse struct {
	MenuID        int64    `json:"menuId" example:"1"`
	AverageRating *float64 `json:"averageRating,omitempty" example:"4.2"`
	FeedbackCount int64    `json:"feedbackCount" example:"17"`
}

// ToModel converts the request into a feedback model. Feedback type
// defaults to GENERAL when omitted.
func (r *CreateFeedbackRequest) ToModel() *models.Feedback {
	feedbackType := models.FeedbackTypeGeneral
	if r.FeedbackType != "" {
		feedbackType, _ = models.ParseFeedbackType(r.FeedbackType)
	}
	return &models.Feedback{
		StudentID:    r.StudentID,
		MenuID:       r.MenuID,
		Rating:       r.Rating,
		Comments:     r.Comments,
		FeedbackType: feedbackType,
	}
}

// NewFeedbackResponse maps a feedback model to its response form
func NewFeedbackResponse(feedback *models.Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:            feedback.ID,
		StudentID:     feedback.StudentID,
		MenuID:        feedback.MenuID,
		Rating:        feedback.Rating,
		Comments:      feedback.Comments,
		FeedbackType:  string(feedback.FeedbackType),
		FeedbackLabel: feedback.FeedbackType.DisplayName(),
		IsPositive:    feedback.IsPositive(),
		SubmittedAt:   feedback.CreatedAt,
	}
	if feedback.Student != nil {
		resp.StudentName = feedback.Student.Name
	}
	if feedback.Menu != nil {
		resp.MenuDate = feedback.Menu.MenuDate.Format(MenuDateLayout)
		resp.MealType = string(feedback.Menu.MealType)
	}
	return resp
}

// NewFeedbackResponses maps a slice of feedback models
func NewFeedbackResponses(feedbacks []*models.Feedback) []FeedbackResponse {
	responses := make([]FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, NewFeedbackResponse(f))
	}
	return responses
}
