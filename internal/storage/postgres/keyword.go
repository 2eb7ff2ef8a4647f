package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"job_aggregator/internal/domain"
)

type KeywordStore struct {
	db *sqlx.DB
}

func NewKeywordStore(db *sqlx.DB) *KeywordStore {
	return &KeywordStore{db: db}
}

// ListInterests returns every subscription grouped by user, oldest first.
func (s *KeywordStore) ListInterests(ctx context.Context) ([]domain.KeywordInterest, error) {
	query := `
		SELECT user_id, keyword_text, created_at
		FROM keyword_interests
		ORDER BY user_id, created_at, id`

	var interests []domain.KeywordInterest
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &interests, query)
	return interests, err
}
