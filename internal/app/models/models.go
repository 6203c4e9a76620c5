package models

import "time"

// EntityMeta holds the columns shared by every table: the surrogate key
// and the audit timestamps. Entities embed it instead of repeating the
// fields.
type EntityMeta struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"`
}
