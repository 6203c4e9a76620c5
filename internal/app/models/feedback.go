package models

import "fmt"

// FeedbackType classifies what aspect of the meal the feedback covers.
type FeedbackType string

const (
	FeedbackTypeGeneral    FeedbackType = "GENERAL"
	FeedbackTypeTaste      FeedbackType = "TASTE"
	FeedbackTypeHygiene    FeedbackType = "HYGIENE"
	FeedbackTypeService    FeedbackType = "SERVICE"
	FeedbackTypeSuggestion FeedbackType = "SUGGESTION"
	FeedbackTypeComplaint  FeedbackType = "COMPLAINT"
)

var feedbackTypeNames = map[FeedbackType]string{
	FeedbackTypeGeneral:    "General Feedback",
	FeedbackTypeTaste:      "Taste & Quality",
	FeedbackTypeHygiene:    "Hygiene & Cleanliness",
	FeedbackTypeService:    "Service Quality",
	FeedbackTypeSuggestion: "Suggestion",
	FeedbackTypeComplaint:  "Complaint",
}

// ParseFeedbackType validates a wire value against the known types.
func ParseFeedbackType(raw string) (FeedbackType, error) {
	feedbackType := FeedbackType(raw)
	if _, ok := feedbackTypeNames[feedbackType]; !ok {
		return "", fmt.Errorf("unknown feedback type %q", raw)
	}
	return feedbackType, nil
}

// DisplayName returns the human-readable label for the feedback type.
func (t FeedbackType) DisplayName() string {
	return feedbackTypeNames[t]
}

// Rating bounds for meal feedback. Ratings of PositiveRatingFloor and
// above count as positive, NegativeRatingCeil and below as negative.
const (
	MinRating           = 1
	MaxRating           = 5
	PositiveRatingFloor = 4
	NegativeRatingCeil  = 2
)

// Feedback defines a student's meal rating based on the 'feedbacks'
// table. Student and Menu are explicit foreign keys; at most one
// feedback exists per (student, menu) pair.
type Feedback struct {
	EntityMeta
	StudentID    int64        `json:"studentId" db:"student_id" example:"1"`
	MenuID       int64        `json:"menuId" db:"menu_id" example:"1"`
	Rating       int          `json:"rating" db:"rating" example:"4"`
	Comments     *string      `json:"comments,omitempty" db:"comments"`
	FeedbackType FeedbackType `json:"feedbackType" db:"feedback_type" example:"TASTE"`

	// Relations, no db tags
	Student *Student `json:"student,omitempty"`
	Menu    *Menu    `json:"menu,omitempty"`
}

// IsValidRating reports whether the rating is on the 1-5 scale.
func (f *Feedback) IsValidRating() bool {
	return f.Rating >= MinRating && f.Rating <= MaxRating
}

// IsPositive reports whether the rating counts as positive.
func (f *Feedback) IsPositive() bool {
	return f.Rating >= PositiveRatingFloor
}

// IsNegative reports whether the rating counts as negative.
func (f *Feedback) IsNegative() bool {
	return f.Rating <= NegativeRatingCeil
}
