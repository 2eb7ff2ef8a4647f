package service

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/fingerprint"
	"job_aggregator/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newPosting(url, title, employer string, scrapedAt time.Time) domain.JobPosting {
	return domain.JobPosting{
		ID:             uuid.New(),
		Fingerprint:    fingerprint.ForPosting(url, title, employer),
		Title:          title,
		EmployerName:   employer,
		Description:    "About the role",
		OriginURL:      url,
		FirstScrapedAt: scrapedAt,
		LastSeenAt:     scrapedAt,
		SourcePlatform: "LinkedIn",
		IsActive:       true,
	}
}

// memoryPostings backs a MockPostingStore with a map keyed by id.
type memoryPostings struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.JobPosting
	// order of first insertion
	ids []uuid.UUID
}

func newMemoryPostings(store *mocks.MockPostingStore, seed ...domain.JobPosting) *memoryPostings {
	m := &memoryPostings{rows: make(map[uuid.UUID]domain.JobPosting)}
	for _, p := range seed {
		m.put(p)
	}

	store.EXPECT().FindByFingerprint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fp string) (*domain.JobPosting, error) {
			return m.find(func(p domain.JobPosting) bool { return p.Fingerprint != nil && *p.Fingerprint == fp }), nil
		}).AnyTimes()
	store.EXPECT().FindByURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, url string) (*domain.JobPosting, error) {
			return m.find(func(p domain.JobPosting) bool { return p.OriginURL == url }), nil
		}).AnyTimes()
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.JobPosting) error {
			m.put(*p)
			return nil
		}).AnyTimes()

	return m
}

func (m *memoryPostings) put(p domain.JobPosting) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		m.ids = append(m.ids, p.ID)
	}
	m.rows[p.ID] = p
}

func (m *memoryPostings) find(pred func(domain.JobPosting) bool) *domain.JobPosting {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.ids {
		if p := m.rows[id]; pred(p) {
			return &p
		}
	}
	return nil
}

func (m *memoryPostings) all() []domain.JobPosting {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.JobPosting, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.rows[id])
	}
	return out
}

func passThroughTx(tx *mocks.MockTransactionManager) {
	run := func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	tx.EXPECT().WithSavepoint(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
}
