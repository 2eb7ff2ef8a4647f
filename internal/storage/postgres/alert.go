package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"job_aggregator/internal/domain"
)

const alertColumnCount = 8

type AlertStore struct {
	db *sqlx.DB
}

func NewAlertStore(db *sqlx.DB) *AlertStore {
	return &AlertStore{db: db}
}

// InsertBatch writes all alerts in a single statement.
func (s *AlertStore) InsertBatch(ctx context.Context, alerts []domain.AlertRecord) error {
	if len(alerts) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO user_alerts
		(id, user_id, related_posting_id, kind, title, message, created_at, is_read) VALUES `)
	args := make([]any, 0, len(alerts)*alertColumnCount)

	for i, a := range alerts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 0; c < alertColumnCount; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*alertColumnCount + c + 1))
		}
		sb.WriteString(")")
		args = append(args, a.ID, a.UserID, a.PostingID, string(a.Kind), a.Title, a.Message, a.CreatedAt, a.IsRead)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}
