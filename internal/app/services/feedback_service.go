package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/repositories"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// FeedbackService handles meal ratings
type FeedbackService struct {
	feedbackStore repositories.FeedbackStore
	studentStore  repositories.StudentStore
	menuStore     repositories.MenuStore
	txRunner      TxRunner
	logger        zerolog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackStore repositories.FeedbackStore, studentStore repositories.StudentStore, menuStore repositories.MenuStore, txRunner TxRunner) *FeedbackService {
	return &FeedbackService{
		feedbackStore: feedbackStore,
		studentStore:  studentStore,
		menuStore:     menuStore,
		txRunner:      txRunner,
		logger:        logger.WithFields(map[string]interface{}{"component": "feedback_service"}),
	}
}

// SubmitFeedback records a student's rating for a menu. A student may
// rate a given menu once; the rating must be within the 1-5 scale.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	if !feedback.IsValidRating() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRating,
			fmt.Sprintf("rating %d is outside the %d-%d scale", feedback.Rating, models.MinRating, models.MaxRating))
	}

	student, err := s.studentStore.GetByID(ctx, feedback.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.CanSubmitFeedback() {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentInactive,
			fmt.Sprintf("student %s is deactivated and cannot submit feedback", student.StudentID))
	}

	menu, err := s.menuStore.GetByID(ctx, feedback.MenuID)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.feedbackStore.WithTx(tx)

		exists, err := store.ExistsByStudentAndMenu(ctx, feedback.StudentID, feedback.MenuID)
		if err != nil {
			return fmt.Errorf("error checking existing feedback: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrDuplicateFeedback,
				fmt.Sprintf("student %s has already rated this menu", student.StudentID))
		}

		return store.Create(ctx, feedback)
	})
	if err != nil {
		return nil, err
	}

	feedback.Student = student
	feedback.Menu = menu
	s.logger.Info().
		Int64("feedbackId", feedback.ID).
		Int64("menuId", feedback.MenuID).
		Int("rating", feedback.Rating).
		Msg("Feedback submitted")
	return feedback, nil
}

// GetFeedbackForMenu lists all ratings for one menu
func (s *FeedbackService) GetFeedbackForMenu(ctx context.Context, menuID int64) ([]*models.Feedback, error) {
	if _, err := s.menuStore.GetByID(ctx, menuID); err != nil {
		return nil, err
	}
	return s.feedbackStore.GetByMenu(ctx, menuID)
}

// GetFeedbackByStudent lists everything one student has rated
func (s *FeedbackService) GetFeedbackByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.feedbackStore.GetByStudent(ctx, studentID)
}

// GetMenuRatingSummary aggregates the ratings of one menu. The average
// is nil when the menu has no feedback yet.
func (s *FeedbackService) GetMenuRatingSummary(ctx context.Context, menuID int64) (*float64, int64, error) {
	if _, err := s.menuStore.GetByID(ctx, menuID); err != nil {
		return nil, 0, err
	}
	average, err := s.feedbackStore.AverageRatingForMenu(ctx, menuID)
	if err != nil {
		return nil, 0, fmt.Errorf("error averaging ratings: %w", err)
	}
	count, err := s.feedbackStore.CountForMenu(ctx, menuID)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting feedback: %w", err)
	}
	return average, count, nil
}

// GetNegativeFeedback lists low ratings that need kitchen follow-up
func (s *FeedbackService) GetNegativeFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackStore.GetNegative(ctx)
}

// GetPositiveFeedback lists high ratings
func (s *FeedbackService) GetPositiveFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackStore.GetPositive(ctx)
}
