package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/repositories"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// StudentService handles the resident registry
type StudentService struct {
	studentStore repositories.StudentStore
	txRunner     TxRunner
	logger       zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore repositories.StudentStore, txRunner TxRunner) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		txRunner:     txRunner,
		logger:       logger.WithFields(map[string]interface{}{"component": "student_service"}),
	}
}

// RegisterStudent enrolls a new resident. The student code and email
// must both be unused; new residents always start active.
func (s *StudentService) RegisterStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	student.StudentID = strings.TrimSpace(student.StudentID)
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	student.IsActive = true

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.studentStore.WithTx(tx)

		exists, err := store.StudentIDExists(ctx, student.StudentID)
		if err != nil {
			return fmt.Errorf("error checking student ID: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrStudentIDAlreadyExists,
				fmt.Sprintf("student ID %s is already registered", student.StudentID))
		}

		exists, err = store.EmailExists(ctx, student.Email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
				fmt.Sprintf("email %s is already registered", student.Email))
		}

		return store.Create(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", student.ID).
		Str("studentId", student.StudentID).
		Msg("Student registered")
	return student, nil
}

// GetStudentByID retrieves a student by internal ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("student ID must be positive")
	}
	return s.studentStore.GetByID(ctx, id)
}

// GetStudentByCode retrieves a student by the institutional student code
func (s *StudentService) GetStudentByCode(ctx context.Context, code string) (*models.Student, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewBadRequestError("student code cannot be empty")
	}
	return s.studentStore.GetByStudentID(ctx, code)
}

// GetActiveStudents lists every resident currently enrolled
func (s *StudentService) GetActiveStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentStore.GetAllActive(ctx)
}

// UpdateStudent changes a resident's profile fields. The student code
// is immutable; email changes must not collide with another resident.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, name, email string, roomNumber, phoneNumber *string) (*models.Student, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var student *models.Student
	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.studentStore.WithTx(tx)

		var err error
		student, err = store.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if email != student.Email {
			exists, err := store.EmailExists(ctx, email)
			if err != nil {
				return fmt.Errorf("error checking email: %w", err)
			}
			if exists {
				return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
					fmt.Sprintf("email %s is already registered", email))
			}
		}

		student.Name = name
		student.Email = email
		student.RoomNumber = roomNumber
		student.PhoneNumber = phoneNumber
		return store.Update(ctx, student)
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// DeactivateStudent soft-deletes a resident. Their history stays, but
// they can no longer submit feedback or complaints.
func (s *StudentService) DeactivateStudent(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

// ReactivateStudent re-enrolls a previously deactivated resident
func (s *StudentService) ReactivateStudent(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

func (s *StudentService) setActive(ctx context.Context, id int64, active bool) error {
	if id <= 0 {
		return apperrors.NewBadRequestError("student ID must be positive")
	}

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.studentStore.WithTx(tx)

		student, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if active {
			student.Activate()
		} else {
			student.Deactivate()
		}
		return store.Update(ctx, student)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Bool("active", active).Msg("Student activation changed")
	return nil
}

// CountActiveStudents counts residents currently enrolled
func (s *StudentService) CountActiveStudents(ctx context.Context) (int64, error) {
	students, err := s.studentStore.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(students)), nil
}
