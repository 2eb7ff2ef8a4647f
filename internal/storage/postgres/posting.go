package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"job_aggregator/internal/domain"
)

const postingColumns = `
	id, source_fingerprint, title, employer_name, location, description,
	origin_url, posting_date, first_scraped_at, last_seen_at, source_platform,
	employment_type, is_remote, is_active, compensation, duration`

type PostingStore struct {
	db *sqlx.DB
}

func NewPostingStore(db *sqlx.DB) *PostingStore {
	return &PostingStore{db: db}
}

func (s *PostingStore) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.JobPosting, error) {
	query := `SELECT` + postingColumns + `
		FROM job_postings
		WHERE source_fingerprint = $1 AND is_active
		LIMIT 1`

	return s.findOne(ctx, query, fingerprint)
}

func (s *PostingStore) FindByURL(ctx context.Context, originURL string) (*domain.JobPosting, error) {
	query := `SELECT` + postingColumns + `
		FROM job_postings
		WHERE origin_url = $1 AND is_active
		LIMIT 1`

	return s.findOne(ctx, query, originURL)
}

func (s *PostingStore) findOne(ctx context.Context, query string, arg any) (*domain.JobPosting, error) {
	var posting domain.JobPosting
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &posting, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

// Upsert inserts the posting or, when its id already exists, overwrites the
// fields that change between sightings.
func (s *PostingStore) Upsert(ctx context.Context, posting *domain.JobPosting) error {
	query := `
		INSERT INTO job_postings (` + postingColumns + `
		) VALUES (
			:id, :source_fingerprint, :title, :employer_name, :location, :description,
			:origin_url, :posting_date, :first_scraped_at, :last_seen_at, :source_platform,
			:employment_type, :is_remote, :is_active, :compensation, :duration
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			compensation = EXCLUDED.compensation,
			employment_type = EXCLUDED.employment_type,
			is_remote = EXCLUDED.is_remote,
			last_seen_at = EXCLUDED.last_seen_at,
			is_active = EXCLUDED.is_active`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, posting)
	return err
}

func (s *PostingStore) ListActiveSince(ctx context.Context, since time.Time) ([]domain.JobPosting, error) {
	query := `SELECT` + postingColumns + `
		FROM job_postings
		WHERE is_active AND first_scraped_at >= $1
		ORDER BY first_scraped_at, id`

	var postings []domain.JobPosting
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &postings, query, since)
	return postings, err
}
