package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deepam/hostelmess/internal/pkg/apperrors"
)

func handleOnTestContext(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/complaints", nil)

	HandleAPIError(c, err)
	return recorder
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", apperrors.NewBadRequestError("student 42 does not exist"), http.StatusBadRequest},
		{"inactive student", apperrors.ErrStudentInactive, http.StatusBadRequest},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusBadRequest},
		{"invalid state", apperrors.NewInvalidStateError("only resolved complaints can be closed"), http.StatusBadRequest},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"complaint not found", apperrors.ErrComplaintNotFound, http.StatusNotFound},
		{"duplicate student code", apperrors.ErrStudentIDAlreadyExists, http.StatusConflict},
		{"duplicate feedback", apperrors.ErrDuplicateFeedback, http.StatusConflict},
		{"unclassified", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := handleOnTestContext(t, tt.err)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

// A submission referencing a missing student is wrapped by the service
// as a bad request, so the complaint endpoint answers 400, not 404.
func TestHandleAPIError_WrappedStudentReference(t *testing.T) {
	err := apperrors.NewBadRequestError("student 42 does not exist")

	recorder := handleOnTestContext(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
