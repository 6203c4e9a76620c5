package models

import "fmt"

// ComplaintStatus is the lifecycle state of a complaint ticket.
type ComplaintStatus string

const (
	ComplaintStatusSubmitted  ComplaintStatus = "SUBMITTED"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
	ComplaintStatusClosed     ComplaintStatus = "CLOSED"
	// ComplaintStatusRejected is a legal terminal value but no operation
	// currently transitions a complaint into it. TODO: product to define
	// when a complaint gets rejected.
	ComplaintStatusRejected ComplaintStatus = "REJECTED"
)

var complaintStatusNames = map[ComplaintStatus]string{
	ComplaintStatusSubmitted:  "Submitted",
	ComplaintStatusInProgress: "In Progress",
	ComplaintStatusResolved:   "Resolved",
	ComplaintStatusClosed:     "Closed",
	ComplaintStatusRejected:   "Rejected",
}

// OpenComplaintStatuses are the statuses still awaiting staff action,
// in triage listing order.
var OpenComplaintStatuses = []ComplaintStatus{ComplaintStatusSubmitted, ComplaintStatusInProgress}

// ParseComplaintStatus validates a wire value against the known statuses.
func ParseComplaintStatus(raw string) (ComplaintStatus, error) {
	status := ComplaintStatus(raw)
	if _, ok := complaintStatusNames[status]; !ok {
		return "", fmt.Errorf("unknown complaint status %q", raw)
	}
	return status, nil
}

// DisplayName returns the human-readable label for the status.
func (s ComplaintStatus) DisplayName() string {
	return complaintStatusNames[s]
}

// IsOpen reports whether the complaint still needs staff attention.
func (s ComplaintStatus) IsOpen() bool {
	return s == ComplaintStatusSubmitted || s == ComplaintStatusInProgress
}

// IsClosed reports whether the status is terminal.
func (s ComplaintStatus) IsClosed() bool {
	return s == ComplaintStatusClosed || s == ComplaintStatusRejected
}

// ComplaintCategory classifies what a complaint is about.
type ComplaintCategory string

const (
	CategoryFoodQuality    ComplaintCategory = "FOOD_QUALITY"
	CategoryHygiene        ComplaintCategory = "HYGIENE"
	CategoryService        ComplaintCategory = "SERVICE"
	CategoryInfrastructure ComplaintCategory = "INFRASTRUCTURE"
	CategoryStaffBehavior  ComplaintCategory = "STAFF_BEHAVIOR"
	CategoryTiming         ComplaintCategory = "TIMING"
	CategoryGeneral        ComplaintCategory = "GENERAL"
)

var complaintCategoryNames = map[ComplaintCategory]string{
	CategoryFoodQuality:    "Food Quality",
	CategoryHygiene:        "Hygiene & Cleanliness",
	CategoryService:        "Service Quality",
	CategoryInfrastructure: "Infrastructure",
	CategoryStaffBehavior:  "Staff Behavior",
	CategoryTiming:         "Meal Timing",
	CategoryGeneral:        "General",
}

// ParseComplaintCategory validates a wire value against the known categories.
func ParseComplaintCategory(raw string) (ComplaintCategory, error) {
	category := ComplaintCategory(raw)
	if _, ok := complaintCategoryNames[category]; !ok {
		return "", fmt.Errorf("unknown complaint category %q", raw)
	}
	return category, nil
}

// DisplayName returns the human-readable label for the category.
func (c ComplaintCategory) DisplayName() string {
	return complaintCategoryNames[c]
}

// Priority ranks how urgently a complaint needs handling.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// priorityRanks orders priorities for triage. Higher rank sorts first.
var priorityRanks = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// ParsePriority validates a wire value against the known priorities.
func ParsePriority(raw string) (Priority, error) {
	priority := Priority(raw)
	if _, ok := priorityNames[priority]; !ok {
		return "", fmt.Errorf("unknown priority %q", raw)
	}
	return priority, nil
}

// DisplayName returns the human-readable label for the priority.
func (p Priority) DisplayName() string {
	return priorityNames[p]
}

// Rank returns the numeric triage weight; URGENT > HIGH > MEDIUM > LOW.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

// IsHighPriority reports whether the priority is HIGH or URGENT.
func (p Priority) IsHighPriority() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// Complaint defines a student complaint ticket based on the 'complaints'
// table. StudentID is an explicit foreign key; the Student relation is
// populated by the repository when the caller needs the resident's name.
type Complaint struct {
	EntityMeta
	StudentID       int64             `json:"studentId" db:"student_id" example:"1"`
	Title           string            `json:"title" db:"title" example:"Food served cold"`
	Description     string            `json:"description" db:"description"`
	Category        ComplaintCategory `json:"category" db:"category" example:"FOOD_QUALITY"`
	Status          ComplaintStatus   `json:"status" db:"status" example:"SUBMITTED"`
	Priority        Priority          `json:"priority" db:"priority" example:"MEDIUM"`
	ResolutionNotes *string           `json:"resolutionNotes,omitempty" db:"resolution_notes"`
	ResolvedBy      *string           `json:"resolvedBy,omitempty" db:"resolved_by"`

	// Relation, no db tag
	Student *Student `json:"student,omitempty"`
}

// MarkInProgress moves the complaint to IN_PROGRESS. Allowed from any state.
func (c *Complaint) MarkInProgress() {
	c.Status = ComplaintStatusInProgress
}

// CanBeResolved reports whether the complaint is still open for resolution.
func (c *Complaint) CanBeResolved() bool {
	return c.Status.IsOpen()
}

// Resolve marks the complaint RESOLVED and records who fixed it and how.
// Omitted notes or resolver stay unset. Callers must check CanBeResolved
// first.
func (c *Complaint) Resolve(notes, resolvedBy *string) {
	c.Status = ComplaintStatusResolved
	c.ResolutionNotes = notes
	c.ResolvedBy = resolvedBy
}

// Close moves a RESOLVED complaint to CLOSED. Closing from any other
// state is a guard violation handled by the caller.
func (c *Complaint) Close() bool {
	if c.Status != ComplaintStatusResolved {
		return false
	}
	c.Status = ComplaintStatusClosed
	return true
}

// IsOpen reports whether the complaint still needs staff attention.
func (c *Complaint) IsOpen() bool {
	return c.Status.IsOpen()
}
