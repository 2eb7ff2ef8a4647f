package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertSingleMatch  AlertKind = "SingleMatch"
	AlertSummaryMatch AlertKind = "SummaryMatch"
)

// AlertRecord is an outbound notification for one user.
type AlertRecord struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	PostingID *uuid.UUID `db:"related_posting_id" json:"related_posting_id,omitempty"` // nil for summary alerts
	Kind      AlertKind  `db:"kind" json:"kind"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	IsRead    bool       `db:"is_read" json:"is_read"`
}
