package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx. Every
// repository runs against it, which lets a service rebind a repository
// onto an open transaction with WithTx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository   *StudentRepository
	MenuRepository      *MenuRepository
	FeedbackRepository  *FeedbackRepository
	ComplaintRepository *ComplaintRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:   NewStudentRepository(db),
		MenuRepository:      NewMenuRepository(db),
		FeedbackRepository:  NewFeedbackRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
