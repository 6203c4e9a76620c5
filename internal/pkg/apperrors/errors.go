package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Workflow errors
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("operation not allowed in current state")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentInactive        = errors.New("student is not active")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
	ErrEmailAlreadyExists     = errors.New("email already exists")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Menu errors
var (
	ErrMenuNotFound      = errors.New("menu not found")
	ErrMenuAlreadyExists = errors.New("menu already exists for this date and meal type")
)

// Feedback errors
var (
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrDuplicateFeedback = errors.New("student has already provided feedback for this menu")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// NewResourceNotFoundError creates a not-found error carrying a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error carrying a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewInvalidStateError creates a state-guard error carrying a message
func NewInvalidStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// Is reports whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
