package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/metrics"
)

// Merger reconciles freshly scraped postings with the posting store.
type Merger struct {
	postings  PostingStore
	txManager TransactionManager
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewMerger(postings PostingStore, txManager TransactionManager, m *metrics.Metrics, logger *slog.Logger) *Merger {
	return &Merger{
		postings:  postings,
		txManager: txManager,
		metrics:   m,
		logger:    logger.With("component", "merger"),
		now:       time.Now,
	}
}

// MergeAndPersist inserts unseen postings and refreshes known ones inside a
// single transaction. Each record runs in its own savepoint, so a failing
// record is logged and skipped. A commit failure is returned as an error
// and no counts are reported.
func (m *Merger) MergeAndPersist(ctx context.Context, fresh []domain.JobPosting) (*domain.MergeResult, error) {
	result := &domain.MergeResult{NewBySource: make(map[string]int)}
	if len(fresh) == 0 {
		return result, nil
	}

	err := m.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range fresh {
			if err := txCtx.Err(); err != nil {
				return err
			}

			posting := fresh[i]
			logger := m.logger.With("url", posting.OriginURL, "source", posting.SourcePlatform)

			if err := posting.Validate(); err != nil {
				logger.Warn("skipping invalid posting", "error", err)
				result.Failed++
				continue
			}

			var isNew bool
			err := m.txManager.WithSavepoint(txCtx, func(spCtx context.Context) error {
				var err error
				isNew, err = m.mergeOne(spCtx, &posting)
				return err
			})
			if err != nil {
				logger.Error("failed to persist posting", "error", err)
				result.Failed++
				continue
			}

			if isNew {
				result.New++
				result.NewBySource[posting.SourceName()]++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("commit merge: %w", err)
	}

	m.metrics.ObserveMerge(result.New, result.Updated, result.Failed)

	m.logger.Info("merge completed",
		"fresh", len(fresh),
		"new", result.New,
		"updated", result.Updated,
		"failed", result.Failed,
	)

	return result, nil
}

// mergeOne writes one posting and reports whether it was inserted. On
// insert, posting is updated in place with its final identity.
func (m *Merger) mergeOne(ctx context.Context, posting *domain.JobPosting) (bool, error) {
	existing, err := m.lookup(ctx, posting)
	if err != nil {
		return false, err
	}

	now := m.now()

	if existing == nil {
		if posting.ID == uuid.Nil {
			posting.ID = uuid.New()
		}
		if posting.FirstScrapedAt.IsZero() {
			posting.FirstScrapedAt = now
		}
		if posting.LastSeenAt.Before(posting.FirstScrapedAt) {
			posting.LastSeenAt = posting.FirstScrapedAt
		}
		posting.IsActive = true

		if err := m.postings.Upsert(ctx, posting); err != nil {
			return false, fmt.Errorf("insert posting: %w", err)
		}
		return true, nil
	}

	existing.Refresh(posting, now)
	if err := m.postings.Upsert(ctx, existing); err != nil {
		return false, fmt.Errorf("update posting %s: %w", existing.ID, err)
	}
	return false, nil
}

// lookup finds the stored posting by fingerprint, falling back to the
// origin URL when the fingerprint is absent or unknown.
func (m *Merger) lookup(ctx context.Context, posting *domain.JobPosting) (*domain.JobPosting, error) {
	if posting.Fingerprint != nil {
		existing, err := m.postings.FindByFingerprint(ctx, *posting.Fingerprint)
		if err != nil {
			return nil, fmt.Errorf("find by fingerprint: %w", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	existing, err := m.postings.FindByURL(ctx, posting.OriginURL)
	if err != nil {
		return nil, fmt.Errorf("find by url: %w", err)
	}
	return existing, nil
}
