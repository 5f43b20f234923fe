package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export statuses.
const (
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportRecord is the audit row kept for every attempted export.
type ExportRecord struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	StyleID   string    `json:"style_id"`
	Language  string    `json:"language"`
	Format    string    `json:"format"`
	Status    string    `json:"status"`
	FileName  string    `json:"file_name"`
	FileSize  int       `json:"file_size"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
