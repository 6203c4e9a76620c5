package models

// Student defines a hostel resident based on the 'students' table.
// StudentID is the human-assigned code (e.g. "ST001") and is immutable
// after registration; ID is the database key.
type Student struct {
	EntityMeta
	StudentID   string  `json:"studentId" db:"student_id" example:"ST001"`
	Name        string  `json:"name" db:"name" example:"Rahul Sharma"`
	Email       string  `json:"email" db:"email" example:"rahul@hostel.edu"`
	RoomNumber  *string `json:"roomNumber,omitempty" db:"room_number" example:"A-101"`
	PhoneNumber *string `json:"phoneNumber,omitempty" db:"phone_number" example:"+919876543210"`
	IsActive    bool    `json:"isActive" db:"is_active" example:"true"`
}

// CanSubmitFeedback reports whether the student may raise complaints or
// feedback. Deactivated students keep their history but cannot submit.
func (s *Student) CanSubmitFeedback() bool {
	return s.IsActive
}

// Deactivate soft-deletes the student. The record is never removed.
func (s *Student) Deactivate() {
	s.IsActive = false
}

// Activate re-enables a previously deactivated student.
func (s *Student) Activate() {
	s.IsActive = true
}
