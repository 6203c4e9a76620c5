package dto

import (
	"time"

	"github.com/deepam/hostelmess/internal/app/models"
)

// CreateStudentRequest is the payload for registering a student
type CreateStudentRequest struct {
	StudentID   string  `json:"studentId" binding:"required,min=3,max=20" example:"HM2024001"`
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Priya Sharma"`
	Email       string  `json:"email" binding:"required,email,max=100" example:"priya.sharma@example.edu"`
	RoomNumber  *string `json:"roomNumber,omitempty" binding:"omitempty,max=10" example:"B-214"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,phone" example:"+919812345678"`
}

// UpdateStudentRequest is the payload for updating a student's profile.
// The student code itself is immutable and cannot be changed here.
type UpdateStudentRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Priya Sharma"`
	Email       string  `json:"email" binding:"required,email,max=100" example:"priya.sharma@example.edu"`
	RoomNumber  *string `json:"roomNumber,omitempty" binding:"omitempty,max=10" example:"B-214"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,phone" example:"+919812345678"`
}

// StudentResponse is the outbound representation of a student
type StudentResponse struct {
	ID          int64     `json:"id" example:"1"`
	StudentID   string    `json:"studentId" example:"HM2024001"`
	Name        string    `json:"name" example:"Priya Sharma"`
	Email       string    `json:"email" example:"priya.sharma@example.edu"`
	RoomNumber  *string   `json:"roomNumber,omitempty" example:"B-214"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" example:"+919812345678"`
	IsActive    bool      `json:"isActive" example:"true"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-06-01T12:01:05.123Z"`
}

// ToModel converts the request into a student model
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentID:   r.StudentID,
		Name:        r.Name,
		Email:       r.Email,
		RoomNumber:  r.RoomNumber,
		PhoneNumber: r.PhoneNumber,
		IsActive:    true,
	}
}

// NewStudentResponse maps a student model to its response form
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:          student.ID,
		StudentID:   student.StudentID,
		Name:        student.Name,
		Email:       student.Email,
		RoomNumber:  student.RoomNumber,
		PhoneNumber: student.PhoneNumber,
		IsActive:    student.IsActive,
		CreatedAt:   student.CreatedAt,
	}
}

// NewStudentResponses maps a slice of student models
func NewStudentResponses(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, NewStudentResponse(s))
	}
	return responses
}
