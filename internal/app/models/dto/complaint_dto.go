package dto

import (
	"time"

	"github.com/deepam/hostelmess/internal/app/models"
)

// CreateComplaintRequest is the payload for submitting a complaint.
// Category defaults to GENERAL and priority to MEDIUM when omitted.
type CreateComplaintRequest struct {
	StudentID   int64  `json:"studentId" binding:"required" example:"1"`
	Title       string `json:"title" binding:"required,min=5,max=200" example:"Stale food served at dinner"`
	Description string `json:"description" binding:"required,min=10,max=2000" example:"The rice served on June 1st dinner smelled sour and several students fell sick."`
	Category    string `json:"category,omitempty" binding:"omitempty,oneof=FOOD_QUALITY HYGIENE SERVICE INFRASTRUCTURE STAFF_BEHAVIOR TIMING GENERAL" example:"FOOD_QUALITY"`
	Priority    string `json:"priority,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT" example:"HIGH"`
}

// UpdateComplaintStatusRequest carries a workflow transition, bound
// from query parameters.
type UpdateComplaintStatusRequest struct {
	Status          string  `form:"status" json:"status" binding:"required,oneof=SUBMITTED IN_PROGRESS RESOLVED REJECTED CLOSED" example:"RESOLVED"`
	ResolutionNotes *string `form:"notes" json:"resolutionNotes,omitempty" binding:"omitempty,max=1000" example:"Kitchen vendor replaced; stock rotation policy enforced."`
	ResolvedBy      *string `form:"resolvedBy" json:"resolvedBy,omitempty" binding:"omitempty,max=100" example:"warden.office"`
}

// ComplaintResponse is the outbound representation of a complaint
type ComplaintResponse struct {
	ID              int64   `json:"id" example:"1"`
	StudentID       int64   `json:"studentId" example:"1"`
	StudentName     string  `json:"studentName,omitempty" example:"Priya Sharma"`
	Title           string  `json:"title" example:"Stale food served at dinner"`
	Description     string  `json:"description" example:"The rice served on June 1st dinner smelled sour."`
	Category        string  `json:"category" example:"FOOD_QUALITY"`
	CategoryLabel   string  `json:"categoryLabel" example:"Food Quality"`
	Status          string  `json:"status" example:"SUBMITTED"`
	StatusLabel     string  `json:"statusLabel" example:"Submitted"`
	Priority        string  `json:"priority" example:"HIGH"`
	PriorityLabel   string  `json:"priorityLabel" example:"High"`
	ResolutionNotes *string `json:"resolutionNotes,omitempty"`
	ResolvedBy      *string `json:"resolvedBy,omitempty" example:"warden.office"`

	SubmittedAt time.Time `json:"submittedAt" example:"2025-06-01T12:01:05.123Z"`
	LastUpdated time.Time `json:"lastUpdated" example:"2025-06-02T09:30:00.000Z"`
}

// ComplaintStatsResponse carries workload counters for the admin dashboard
type ComplaintStatsResponse struct {
	Pending    int64 `json:"pending" example:"4"`
	InProgress int64 `json:"inProgress" example:"2"`
	UrgentOpen int64 `json:"urgentOpen" example:"1"`
}

// ToModel converts the request into a complaint model, applying the
// category and priority defaults for omitted fields.
func (r *CreateComplaintRequest) ToModel() *models.Complaint {
	category := models.CategoryGeneral
	if r.Category != "" {
		category, _ = models.ParseComplaintCategory(r.Category)
	}
	priority := models.PriorityMedium
	if r.Priority != "" {
		priority, _ = models.ParsePriority(r.Priority)
	}
	return &models.Complaint{
		StudentID:   r.StudentID,
		Title:       r.Title,
		Description: r.Description,
		Category:    category,
		Status:      models.ComplaintStatusSubmitted,
		Priority:    priority,
	}
}

// NewComplaintResponse maps a complaint model to its response form
func NewComplaintResponse(complaint *models.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:              complaint.ID,
		StudentID:       complaint.StudentID,
		Title:           complaint.Title,
		Description:     complaint.Description,
		Category:        string(complaint.Category),
		CategoryLabel:   complaint.Category.DisplayName(),
		Status:          string(complaint.Status),
		StatusLabel:     complaint.Status.DisplayName(),
		Priority:        string(complaint.Priority),
		PriorityLabel:   complaint.Priority.DisplayName(),
		ResolutionNotes: complaint.ResolutionNotes,
		ResolvedBy:      complaint.ResolvedBy,
		SubmittedAt:     complaint.CreatedAt,
		LastUpdated:     complaint.UpdatedAt,
	}
	if complaint.Student != nil {
		resp.StudentName = complaint.Student.Name
	}
	return resp
}

// NewComplaintResponses maps a slice of complaint models
func NewComplaintResponses(complaints []*models.Complaint) []ComplaintResponse {
	responses := make([]ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, NewComplaintResponse(c))
	}
	return responses
}
