package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/repositories"
	"github.com/deepam/hostelmess/internal/db"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// TxRunner starts a scoped transaction around a write operation. It is
// satisfied by *db.PostgresDB; tests substitute a pass-through runner.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// ComplaintService handles the complaint ticket workflow
type ComplaintService struct {
	complaintStore repositories.ComplaintStore
	studentStore   repositories.StudentStore
	txRunner       TxRunner
	logger         zerolog.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintStore repositories.ComplaintStore, studentStore repositories.StudentStore, txRunner TxRunner) *ComplaintService {
	return &ComplaintService{
		complaintStore: complaintStore,
		studentStore:   studentStore,
		txRunner:       txRunner,
		logger:         logger.WithFields(map[string]interface{}{"component": "complaint_service"}),
	}
}

// SubmitComplaint files a new complaint ticket. The ticket always
// enters the workflow as SUBMITTED with empty resolution fields,
// whatever the caller put on the model.
func (s *ComplaintService) SubmitComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error) {
	student, err := s.studentStore.GetByID(ctx, complaint.StudentID)
	if err != nil {
		// A dangling student reference on submission is a caller mistake,
		// not a missing resource.
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("student %d does not exist", complaint.StudentID))
		}
		return nil, err
	}
	if !student.CanSubmitFeedback() {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentInactive,
			fmt.Sprintf("student %s is deactivated and cannot submit complaints", student.StudentID))
	}

	complaint.Status = models.ComplaintStatusSubmitted
	complaint.ResolutionNotes = nil
	complaint.ResolvedBy = nil

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.complaintStore.WithTx(tx).Create(ctx, complaint)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating complaint: %w", err)
	}

	complaint.Student = student
	s.logger.Info().
		Int64("complaintId", complaint.ID).
		Int64("studentId", complaint.StudentID).
		Str("priority", string(complaint.Priority)).
		Msg("Complaint submitted")
	return complaint, nil
}

// GetComplaintByID retrieves a single complaint
func (s *ComplaintService) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("complaint ID must be positive")
	}
	return s.complaintStore.GetByID(ctx, id)
}

// GetComplaintsByStudent lists every complaint a student has filed
func (s *ComplaintService) GetComplaintsByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.complaintStore.GetByStudent(ctx, studentID)
}

// GetOpenComplaints returns the staff triage queue: tickets still
// awaiting action, most urgent first, oldest first within a priority.
func (s *ComplaintService) GetOpenComplaints(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintStore.GetByStatuses(ctx, models.OpenComplaintStatuses)
}

// GetAllComplaints returns every complaint regardless of state
func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintStore.GetAll(ctx)
}

// UpdateComplaintStatus drives a complaint through its workflow.
//
// Allowed targets:
//   - IN_PROGRESS: from any state, no guard
//   - RESOLVED: only while the ticket is still open; records the
//     resolution notes and who resolved it
//   - CLOSED: only from RESOLVED
//
// SUBMITTED and REJECTED are never valid targets here.
func (s *ComplaintService) UpdateComplaintStatus(ctx context.Context, id int64, target models.ComplaintStatus, notes, resolvedBy *string) (*models.Complaint, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("complaint ID must be positive")
	}

	var complaint *models.Complaint
	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		store := s.complaintStore.WithTx(tx)

		var err error
		complaint, err = store.GetByID(ctx, id)
		if err != nil {
			return err
		}

		switch target {
		case models.ComplaintStatusInProgress:
			complaint.MarkInProgress()

		case models.ComplaintStatusResolved:
			if !complaint.CanBeResolved() {
				return apperrors.NewInvalidStateError(
					fmt.Sprintf("complaint in state %s cannot be resolved", complaint.Status))
			}
			complaint.Resolve(notes, resolvedBy)

		case models.ComplaintStatusClosed:
			if !complaint.Close() {
				return apperrors.NewInvalidStateError("only resolved complaints can be closed")
			}

		default:
			return apperrors.NewCustomError(apperrors.ErrInvalidTransition,
				fmt.Sprintf("%s is not a valid target status", target))
		}

		return store.Update(ctx, complaint)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("complaintId", complaint.ID).
		Str("status", string(complaint.Status)).
		Msg("Complaint status updated")
	return complaint, nil
}

// GetComplaintStats returns the workload counters shown on the dashboard
func (s *ComplaintService) GetComplaintStats(ctx context.Context) (pending, inProgress, urgentOpen int64, err error) {
	pending, err = s.complaintStore.CountByStatus(ctx, models.ComplaintStatusSubmitted)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error counting pending complaints: %w", err)
	}
	inProgress, err = s.complaintStore.CountByStatus(ctx, models.ComplaintStatusInProgress)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error counting in-progress complaints: %w", err)
	}
	urgentOpen, err = s.complaintStore.CountUrgentOpen(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error counting urgent complaints: %w", err)
	}
	return pending, inProgress, urgentOpen, nil
}

// CountPendingComplaints counts tickets still waiting for first action
func (s *ComplaintService) CountPendingComplaints(ctx context.Context) (int64, error) {
	return s.complaintStore.CountByStatus(ctx, models.ComplaintStatusSubmitted)
}

// CountUrgentOpenComplaints counts open URGENT tickets
func (s *ComplaintService) CountUrgentOpenComplaints(ctx context.Context) (int64, error) {
	return s.complaintStore.CountUrgentOpen(ctx)
}
