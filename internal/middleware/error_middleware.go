package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// HandleAPIError maps service errors to API responses. The error's own
// message is surfaced so guard violations explain which rule fired.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrComplaintNotFound,
		apperrors.ErrMenuNotFound,
		apperrors.ErrFeedbackNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrStudentIDAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrMenuAlreadyExists,
		apperrors.ErrDuplicateFeedback):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case apperrors.Is(err, apperrors.ErrInvalidTransition,
		apperrors.ErrInvalidState):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidState, err.Error())))

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrStudentInactive,
		apperrors.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// ErrorHandlerMiddleware catches errors attached to the gin context by
// downstream handlers and funnels them through HandleAPIError.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			HandleAPIError(c, c.Errors.Last().Err)
		}
	}
}
