package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/dberrors"
)

// FeedbackStore is the query surface the feedback service consumes.
type FeedbackStore interface {
	WithTx(tx pgx.Tx) FeedbackStore
	Create(ctx context.Context, feedback *models.Feedback) error
	ExistsByStudentAndMenu(ctx context.Context, studentID, menuID int64) (bool, error)
	GetByMenu(ctx context.Context, menuID int64) ([]*models.Feedback, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error)
	AverageRatingForMenu(ctx context.Context, menuID int64) (*float64, error)
	CountForMenu(ctx context.Context, menuID int64) (int64, error)
	GetNegative(ctx context.Context) ([]*models.Feedback, error)
	GetPositive(ctx context.Context) ([]*models.Feedback, error)
}

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to an open transaction
func (r *FeedbackRepository) WithTx(tx pgx.Tx) FeedbackStore {
	return &FeedbackRepository{db: tx, sb: r.sb}
}

// feedbackSelect joins the student for the denormalized name and the
// menu for the date/meal-type description on every feedback read.
func (r *FeedbackRepository) feedbackSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"f.id", "f.student_id", "f.menu_id", "f.rating", "f.comments", "f.feedback_type",
		"f.created_at", "f.updated_at",
		"s.student_id", "s.name",
		"m.menu_date", "m.meal_type",
	).
		From("feedbacks f").
		Join("students s ON s.id = f.student_id").
		Join("menus m ON m.id = f.menu_id")
}

func scanFeedback(row pgx.Row) (*models.Feedback, error) {
	var feedback models.Feedback
	var student models.Student
	var menu models.Menu

	err := row.Scan(
		&feedback.ID,
		&feedback.StudentID,
		&feedback.MenuID,
		&feedback.Rating,
		&feedback.Comments,
		&feedback.FeedbackType,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
		&student.StudentID,
		&student.Name,
		&menu.MenuDate,
		&menu.MealType,
	)
	if err != nil {
		return nil, err
	}

	student.ID = feedback.StudentID
	menu.ID = feedback.MenuID
	feedback.Student = &student
	feedback.Menu = &menu
	return &feedback, nil
}

func (r *FeedbackRepository) queryFeedback(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Feedback, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build feedback list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.Feedback
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Create inserts a new feedback record
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	sql, args, err := r.sb.Insert("feedbacks").
		Columns("student_id", "menu_id", "rating", "comments", "feedback_type").
		Values(feedback.StudentID, feedback.MenuID, feedback.Rating, feedback.Comments, feedback.FeedbackType).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create feedback query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID, &feedback.CreatedAt, &feedback.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "feedbacks_student_id_menu_id_key") {
			return apperrors.ErrDuplicateFeedback
		}
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// ExistsByStudentAndMenu checks whether the student already rated the menu
func (r *FeedbackRepository) ExistsByStudentAndMenu(ctx context.Context, studentID, menuID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("feedbacks").
		Where(squirrel.Eq{"student_id": studentID, "menu_id": menuID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build feedback exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking feedback existence: %w", err)
	}

	return exists, nil
}

// GetByMenu retrieves a menu's feedback, newest first
func (r *FeedbackRepository) GetByMenu(ctx context.Context, menuID int64) ([]*models.Feedback, error) {
	return r.queryFeedback(ctx, r.feedbackSelect().
		Where(squirrel.Eq{"f.menu_id": menuID}).
		OrderBy("f.created_at DESC"))
}

// GetByStudent retrieves a student's feedback, newest first
func (r *FeedbackRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	return r.queryFeedback(ctx, r.feedbackSelect().
		Where(squirrel.Eq{"f.student_id": studentID}).
		OrderBy("f.created_at DESC"))
}

// AverageRatingForMenu computes the mean rating; nil when no feedback
// exists yet.
func (r *FeedbackRepository) AverageRatingForMenu(ctx context.Context, menuID int64) (*float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		`SELECT AVG(rating) FROM feedbacks WHERE menu_id = $1`, menuID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("error computing average rating: %w", err)
	}

	return avg, nil
}

// CountForMenu counts the feedback entries for a menu
func (r *FeedbackRepository) CountForMenu(ctx context.Context, menuID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM feedbacks WHERE menu_id = $1`, menuID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting feedback: %w", err)
	}

	return count, nil
}

// GetNegative retrieves feedback rated 2 or below, newest first
func (r *FeedbackRepository) GetNegative(ctx context.Context) ([]*models.Feedback, error) {
	return r.queryFeedback(ctx, r.feedbackSelect().
		Where(squirrel.LtOrEq{"f.rating": models.NegativeRatingCeil}).
		OrderBy("f.created_at DESC"))
}

// GetPositive retrieves feedback rated 4 or above, newest first
func (r *FeedbackRepository) GetPositive(ctx context.Context) ([]*models.Feedback, error) {
	return r.queryFeedback(ctx, r.feedbackSelect().
		Where(squirrel.GtOrEq{"f.rating": models.PositiveRatingFloor}).
		OrderBy("f.created_at DESC"))
}
