package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/service/mocks"
)

type MergerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	postings  *mocks.MockPostingStore
	txManager *mocks.MockTransactionManager

	merger *Merger
	now    time.Time
}

func (s *MergerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.postings = mocks.NewMockPostingStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.merger = NewMerger(s.postings, s.txManager, nil, testLogger())
	s.merger.now = func() time.Time { return s.now }
}

func (s *MergerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMergerTestSuite(t *testing.T) {
	suite.Run(t, new(MergerTestSuite))
}

func (s *MergerTestSuite) TestMerge_InsertsNewPosting() {
	passThroughTx(s.txManager)
	store := newMemoryPostings(s.postings)
	fresh := newPosting("https://jobs.example/1", "Go Engineer", "Acme", s.now.Add(-time.Minute))

	result, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{fresh})

	s.Require().NoError(err)
	s.Equal(1, result.New)
	s.Equal(0, result.Updated)
	s.Equal(map[string]int{"LinkedIn": 1}, result.NewBySource)
	s.Require().Len(store.all(), 1)
	s.Equal(fresh.ID, store.all()[0].ID)
	s.Equal(fresh.FirstScrapedAt, store.all()[0].FirstScrapedAt)
}

func (s *MergerTestSuite) TestMerge_SameRecordTwiceIsIdempotent() {
	passThroughTx(s.txManager)
	store := newMemoryPostings(s.postings)
	scraped := s.now.Add(-time.Hour)
	fresh := newPosting("https://jobs.example/1", "Go Engineer", "Acme", scraped)

	first, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{fresh})
	s.Require().NoError(err)
	s.Equal(1, first.New)

	again := fresh
	again.ID = uuid.Nil
	second, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{again})
	s.Require().NoError(err)

	s.Equal(0, second.New)
	s.Equal(1, second.Updated)

	rows := store.all()
	s.Require().Len(rows, 1)
	s.Equal(fresh.ID, rows[0].ID)
	s.Equal(scraped, rows[0].FirstScrapedAt)
	s.Equal(s.now, rows[0].LastSeenAt)
	s.Equal(fresh.Fingerprint, rows[0].Fingerprint)
}

func (s *MergerTestSuite) TestMerge_DedupAcrossRuns() {
	passThroughTx(s.txManager)
	earlier := s.now.Add(-24 * time.Hour)
	existing := []domain.JobPosting{
		newPosting("https://jobs.example/1", "Go Engineer", "Acme", earlier),
		newPosting("https://jobs.example/2", "Python Engineer", "Beta", earlier),
		newPosting("https://jobs.example/3", "Data Engineer", "Gamma", earlier),
	}
	store := newMemoryPostings(s.postings, existing...)

	var batch []domain.JobPosting
	for _, p := range existing {
		p.ID = uuid.Nil
		batch = append(batch, p)
	}
	batch = append(batch, newPosting("https://jobs.example/4", "Rust Engineer", "Delta", s.now))

	result, err := s.merger.MergeAndPersist(context.Background(), batch)

	s.Require().NoError(err)
	s.Equal(1, result.New)
	s.Equal(3, result.Updated)
	s.Len(store.all(), 4)
}

func (s *MergerTestSuite) TestMerge_UpdatesMutableFieldsOnly() {
	passThroughTx(s.txManager)
	earlier := s.now.Add(-48 * time.Hour)
	stored := newPosting("https://jobs.example/1", "Go Engineer", "Acme", earlier)
	stored.IsActive = false
	store := newMemoryPostings(s.postings, stored)

	fresh := stored
	fresh.ID = uuid.Nil
	fresh.Description = "Updated description"
	loc := "Remote"
	fresh.Location = &loc
	salary := "$150k"
	fresh.Compensation = &salary
	fresh.FirstScrapedAt = s.now

	_, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{fresh})
	s.Require().NoError(err)

	got := store.all()[0]
	s.Equal(stored.ID, got.ID)
	s.Equal(earlier, got.FirstScrapedAt)
	s.Equal("Updated description", got.Description)
	s.Equal("Remote", *got.Location)
	s.Equal("$150k", *got.Compensation)
	s.True(got.IsActive)
	s.Equal(s.now, got.LastSeenAt)
}

func (s *MergerTestSuite) TestMerge_FallsBackToURLWithoutFingerprint() {
	passThroughTx(s.txManager)
	stored := newPosting("https://jobs.example/1", "Go Engineer", "Acme", s.now.Add(-time.Hour))
	store := newMemoryPostings(s.postings, stored)

	fresh := stored
	fresh.ID = uuid.Nil
	fresh.Fingerprint = nil
	fresh.Title = "Senior Go Engineer"

	result, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{fresh})

	s.Require().NoError(err)
	s.Equal(1, result.Updated)
	rows := store.all()
	s.Require().Len(rows, 1)
	s.Equal("Senior Go Engineer", rows[0].Title)
	s.Equal(stored.Fingerprint, rows[0].Fingerprint)
}

func (s *MergerTestSuite) TestMerge_SkipsInvalidAndFailingRecords() {
	passThroughTx(s.txManager)

	good := newPosting("https://jobs.example/good", "Go Engineer", "Acme", s.now)
	bad := newPosting("https://jobs.example/bad", "Go Engineer", "Acme", s.now)
	invalid := newPosting("not-a-url", "Go Engineer", "Acme", s.now)

	s.postings.EXPECT().FindByFingerprint(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	s.postings.EXPECT().FindByURL(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	s.postings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.JobPosting) error {
			if p.OriginURL == bad.OriginURL {
				return errors.New("duplicate key value violates unique constraint")
			}
			return nil
		}).Times(2)

	result, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{invalid, bad, good})

	s.Require().NoError(err)
	s.Equal(1, result.New)
	s.Equal(2, result.Failed)
	s.Equal(map[string]int{"LinkedIn": 1}, result.NewBySource)
}

func (s *MergerTestSuite) TestMerge_CommitFailureIsReturned() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			if err := fn(ctx); err != nil {
				return err
			}
			return errors.New("commit: connection lost")
		})
	s.txManager.EXPECT().WithSavepoint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	newMemoryPostings(s.postings)

	result, err := s.merger.MergeAndPersist(context.Background(), []domain.JobPosting{
		newPosting("https://jobs.example/1", "Go Engineer", "Acme", s.now),
	})

	s.Error(err)
	s.Nil(result)
}

func (s *MergerTestSuite) TestMerge_EmptyBatch() {
	result, err := s.merger.MergeAndPersist(context.Background(), nil)

	s.Require().NoError(err)
	s.Zero(result.New)
}
