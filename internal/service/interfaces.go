package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"job_aggregator/internal/domain"
)

// Extractor turns one external job source into normalized postings.
type Extractor interface {
	Name() string
	Enabled() bool
	// SearchByKeywords returns at most maxResults postings. Failures of a
	// single keyword or page are logged and skipped by the implementation.
	SearchByKeywords(ctx context.Context, keywords []string, maxResults int) ([]domain.JobPosting, error)
	// FetchByURL returns nil without error when the page cannot be parsed.
	FetchByURL(ctx context.Context, rawURL string) (*domain.JobPosting, error)
	TestConnection(ctx context.Context) bool
}

type PostingStore interface {
	FindByFingerprint(ctx context.Context, fingerprint string) (*domain.JobPosting, error)
	FindByURL(ctx context.Context, originURL string) (*domain.JobPosting, error)
	Upsert(ctx context.Context, posting *domain.JobPosting) error
	ListActiveSince(ctx context.Context, since time.Time) ([]domain.JobPosting, error)
}

type KeywordStore interface {
	ListInterests(ctx context.Context) ([]domain.KeywordInterest, error)
}

type AlertStore interface {
	InsertBatch(ctx context.Context, alerts []domain.AlertRecord) error
}

type RunLogStore interface {
	Start(ctx context.Context, log *domain.SourceRunLog) error
	Finish(ctx context.Context, log *domain.SourceRunLog) error
	SetNewlyAdded(ctx context.Context, id int64, count int) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishAlert(ctx context.Context, alert *domain.AlertRecord) error
	Close() error
}
