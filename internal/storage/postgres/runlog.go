package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"job_aggregator/internal/domain"
)

type RunLogStore struct {
	db *sqlx.DB
}

func NewRunLogStore(db *sqlx.DB) *RunLogStore {
	return &RunLogStore{db: db}
}

// Start persists a Running entry and stores the generated id in log.ID.
func (s *RunLogStore) Start(ctx context.Context, log *domain.SourceRunLog) error {
	query := `
		INSERT INTO source_run_logs (source_id, started_at, status, postings_found, postings_newly_added)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		log.SourceID,
		log.StartedAt,
		log.Status,
		log.PostingsFound,
		log.PostingsNewlyAdded,
	).Scan(&log.ID)
}

// Finish records the terminal state. A log that was never started is
// inserted as a whole.
func (s *RunLogStore) Finish(ctx context.Context, log *domain.SourceRunLog) error {
	if log.ID == 0 {
		query := `
			INSERT INTO source_run_logs
				(source_id, started_at, ended_at, status, postings_found, postings_newly_added, message)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`

		return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
			log.SourceID,
			log.StartedAt,
			log.EndedAt,
			log.Status,
			log.PostingsFound,
			log.PostingsNewlyAdded,
			log.Message,
		).Scan(&log.ID)
	}

	query := `
		UPDATE source_run_logs SET
			ended_at = $2,
			status = $3,
			postings_found = $4,
			message = $5
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		log.ID,
		log.EndedAt,
		log.Status,
		log.PostingsFound,
		log.Message,
	)
	return err
}

func (s *RunLogStore) SetNewlyAdded(ctx context.Context, id int64, count int) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE source_run_logs SET postings_newly_added = $2 WHERE id = $1",
		id, count,
	)
	return err
}
