package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/pkg/apperrors"
	"github.com/deepam/hostelmess/internal/pkg/dberrors"
)

// ComplaintStore is the query surface the complaint workflow consumes.
type ComplaintStore interface {
	WithTx(tx pgx.Tx) ComplaintStore
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	GetByStatuses(ctx context.Context, statuses []models.ComplaintStatus) ([]*models.Complaint, error)
	GetAll(ctx context.Context) ([]*models.Complaint, error)
	CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error)
	CountUrgentOpen(ctx context.Context) (int64, error)
	Update(ctx context.Context, complaint *models.Complaint) error
}

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db DBTX
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db DBTX) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to an open transaction
func (r *ComplaintRepository) WithTx(tx pgx.Tx) ComplaintStore {
	return &ComplaintRepository{db: tx}
}

// complaintColumns are the columns selected for every complaint read,
// with the owning student joined in for the denormalized name.
const complaintColumns = `
	c.id, c.student_id, c.title, c.description, c.category, c.status,
	c.priority, c.resolution_notes, c.resolved_by, c.created_at, c.updated_at,
	s.student_id, s.name
`

// priorityOrderExpr encodes the triage ordering: URGENT first, then HIGH,
// MEDIUM, LOW. Priorities are stored as text, so ordering needs an
// explicit rank.
const priorityOrderExpr = `
	CASE c.priority
		WHEN 'URGENT' THEN 4
		WHEN 'HIGH' THEN 3
		WHEN 'MEDIUM' THEN 2
		ELSE 1
	END
`

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var complaint models.Complaint
	var student models.Student

	err := row.Scan(
		&complaint.ID,
		&complaint.StudentID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Category,
		&complaint.Status,
		&complaint.Priority,
		&complaint.ResolutionNotes,
		&complaint.ResolvedBy,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
		&student.StudentID,
		&student.Name,
	)
	if err != nil {
		return nil, err
	}

	student.ID = complaint.StudentID
	complaint.Student = &student
	return &complaint, nil
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, query string, args ...any) ([]*models.Complaint, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

// Create inserts a new complaint and fills in the generated id and
// timestamps.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (student_id, title, description, category, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		complaint.StudentID,
		complaint.Title,
		complaint.Description,
		complaint.Category,
		complaint.Status,
		complaint.Priority,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by ID with its student joined in
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN students s ON s.id = c.student_id
		WHERE c.id = $1
	`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return complaint, nil
}

// GetByStudent retrieves a student's complaints, newest first
func (r *ComplaintRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN students s ON s.id = c.student_id
		WHERE c.student_id = $1
		ORDER BY c.created_at DESC
	`

	return r.queryComplaints(ctx, query, studentID)
}

// GetByStatuses retrieves complaints in any of the given statuses in
// triage order: priority descending, then oldest first.
func (r *ComplaintRepository) GetByStatuses(ctx context.Context, statuses []models.ComplaintStatus) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN students s ON s.id = c.student_id
		WHERE c.status = ANY($1)
		ORDER BY ` + priorityOrderExpr + ` DESC, c.created_at ASC
	`

	wire := make([]string, len(statuses))
	for i, status := range statuses {
		wire[i] = string(status)
	}

	return r.queryComplaints(ctx, query, wire)
}

// GetAll retrieves every complaint, newest first
func (r *ComplaintRepository) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		JOIN students s ON s.id = c.student_id
		ORDER BY c.created_at DESC
	`

	return r.queryComplaints(ctx, query)
}

// CountByStatus counts complaints whose status matches exactly
func (r *ComplaintRepository) CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM complaints WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting complaints by status: %w", err)
	}

	return count, nil
}

// CountUrgentOpen counts URGENT complaints that are still open
func (r *ComplaintRepository) CountUrgentOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM complaints
		WHERE priority = 'URGENT' AND status IN ('SUBMITTED', 'IN_PROGRESS')`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting urgent open complaints: %w", err)
	}

	return count, nil
}

// Update persists the mutable workflow fields of a complaint. Status and
// resolution fields are written in a single statement so a transition is
// never observable half-applied.
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	query := `
		UPDATE complaints
		SET status = $1, resolution_notes = $2, resolved_by = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		complaint.Status,
		complaint.ResolutionNotes,
		complaint.ResolvedBy,
		complaint.ID,
	).Scan(&complaint.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrComplaintNotFound
		}
		return fmt.Errorf("error updating complaint: %w", err)
	}

	return nil
}
