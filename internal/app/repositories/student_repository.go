package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/dberrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// StudentStore is the query surface the student service consumes.
type StudentStore interface {
	WithTx(tx pgx.Tx) StudentStore
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAllActive(ctx context.Context) ([]*models.Student, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to an open transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) StudentStore {
	return &StudentRepository{db: tx, sb: r.sb}
}

var studentColumns = []string{"id", "student_id", "name", "email", "room_number", "phone_number", "is_active", "created_at", "updated_at"}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.RoomNumber,
		&student.PhoneNumber,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create registers a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "name", "email", "room_number", "phone_number", "is_active").
		Values(student.StudentID, student.Name, student.Email, student.RoomNumber, student.PhoneNumber, student.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			logger.Warn().Str("studentID", student.StudentID).Msg("Attempted to register duplicate student ID")
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			logger.Warn().Str("email", student.Email).Msg("Attempted to register duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by database ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByStudentID retrieves a student by the human-assigned student code
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by code query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAllActive retrieves every active student ordered by registration
func (r *StudentRepository) GetAllActive(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// StudentIDExists checks if a student code is already taken
func (r *StudentRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"student_id": studentID})
}

// EmailExists checks if an email is already taken
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

func (r *StudentRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(pred).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Update persists the mutable profile fields and the active flag. The
// student code is immutable and never written here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("email", student.Email).
		Set("room_number", student.RoomNumber).
		Set("phone_number", student.PhoneNumber).
		Set("is_active", student.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
