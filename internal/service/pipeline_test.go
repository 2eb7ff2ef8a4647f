package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/service/mocks"
)

type PipelineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	extractor *mocks.MockExtractor
	postings  *mocks.MockPostingStore
	keywords  *mocks.MockKeywordStore
	alerts    *mocks.MockAlertStore
	runLogs   *mocks.MockRunLogStore
	txManager *mocks.MockTransactionManager

	pipeline *Pipeline
	start    time.Time
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.extractor = mocks.NewMockExtractor(s.ctrl)
	s.postings = mocks.NewMockPostingStore(s.ctrl)
	s.keywords = mocks.NewMockKeywordStore(s.ctrl)
	s.alerts = mocks.NewMockAlertStore(s.ctrl)
	s.runLogs = mocks.NewMockRunLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.extractor.EXPECT().Name().Return("LinkedIn").AnyTimes()
	s.extractor.EXPECT().Enabled().Return(true).AnyTimes()

	logger := testLogger()
	aggregator := NewAggregator([]Extractor{s.extractor}, s.runLogs, 1, nil, logger)
	merger := NewMerger(s.postings, s.txManager, nil, logger)
	notifier := NewNotifier(s.postings, s.keywords, s.alerts, nil, nil, logger)

	s.start = time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	s.pipeline = NewPipeline(s.keywords, s.runLogs, aggregator, merger, notifier, 50, logger)
	s.pipeline.now = func() time.Time { return s.start }
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) expectRunLog(id int64) {
	s.runLogs.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *domain.SourceRunLog) error {
			l.ID = id
			return nil
		})
	s.runLogs.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *PipelineTestSuite) TestRun_NoKeywordsSkipsScraping() {
	ctx := context.Background()
	s.keywords.EXPECT().ListInterests(ctx).Return(nil, nil)

	stats, err := s.pipeline.Run(ctx)

	s.Require().NoError(err)
	s.Zero(stats.Keywords)
	s.Zero(stats.Scraped)
}

func (s *PipelineTestSuite) TestRun_FullCycle() {
	ctx := context.Background()
	users := []domain.KeywordInterest{
		{UserID: "alice", Text: "python"},
		{UserID: "bob", Text: "Python "},
		{UserID: "bob", Text: "rust"},
	}
	s.keywords.EXPECT().ListInterests(gomock.Any()).Return(users, nil).Times(2)

	scraped := newPosting("https://x.example/1", "Senior Python Engineer", "Acme", s.start.Add(time.Minute))
	s.expectRunLog(7)
	s.extractor.EXPECT().SearchByKeywords(gomock.Any(), []string{"python", "rust"}, 50).
		Return([]domain.JobPosting{scraped}, nil)

	passThroughTx(s.txManager)
	store := newMemoryPostings(s.postings)
	s.runLogs.EXPECT().SetNewlyAdded(gomock.Any(), int64(7), 1).Return(nil)

	s.postings.EXPECT().ListActiveSince(gomock.Any(), s.start).DoAndReturn(
		func(context.Context, time.Time) ([]domain.JobPosting, error) {
			return store.all(), nil
		})
	var stored []domain.AlertRecord
	s.alerts.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, alerts []domain.AlertRecord) error {
			stored = alerts
			return nil
		})

	stats, err := s.pipeline.Run(ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Keywords)
	s.Equal(1, stats.Scraped)
	s.Equal(1, stats.New)
	s.Equal(2, stats.Alerts)
	s.Equal(1, stats.SourcesOK)
	s.Require().Len(stored, 2)
	s.Equal("alice", stored[0].UserID)
	s.Equal("bob", stored[1].UserID)
	s.Equal(scraped.ID, *stored[1].PostingID)
}

func (s *PipelineTestSuite) TestRun_NothingNewSkipsNotification() {
	ctx := context.Background()
	s.keywords.EXPECT().ListInterests(gomock.Any()).Return([]domain.KeywordInterest{{UserID: "a", Text: "go"}}, nil)

	existing := newPosting("https://x.example/1", "Go Engineer", "Acme", s.start.Add(-24*time.Hour))
	s.expectRunLog(3)
	s.extractor.EXPECT().SearchByKeywords(gomock.Any(), []string{"go"}, 50).Return([]domain.JobPosting{existing}, nil)

	passThroughTx(s.txManager)
	newMemoryPostings(s.postings, existing)

	stats, err := s.pipeline.Run(ctx)

	s.Require().NoError(err)
	s.Equal(0, stats.New)
	s.Equal(1, stats.Updated)
	s.Zero(stats.Alerts)
}

func (s *PipelineTestSuite) TestRun_MergeFailureAbandonsCycle() {
	ctx := context.Background()
	s.keywords.EXPECT().ListInterests(gomock.Any()).Return([]domain.KeywordInterest{{UserID: "a", Text: "go"}}, nil)
	s.expectRunLog(3)
	s.extractor.EXPECT().SearchByKeywords(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.JobPosting{newPosting("https://x.example/1", "Go Engineer", "Acme", s.start)}, nil)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	stats, err := s.pipeline.Run(ctx)

	s.Error(err)
	s.ErrorContains(err, "merge postings")
	s.Equal(1, stats.Scraped)
}

func (s *PipelineTestSuite) TestRun_ListInterestsFailure() {
	s.keywords.EXPECT().ListInterests(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.pipeline.Run(context.Background())

	s.ErrorContains(err, "list interests")
}

func TestDistinctKeywords(t *testing.T) {
	got := DistinctKeywords([]domain.KeywordInterest{
		{UserID: "a", Text: "Python"},
		{UserID: "b", Text: " python"},
		{UserID: "b", Text: ""},
		{UserID: "c", Text: "Go"},
	})

	assert.Equal(t, []string{"Python", "Go"}, got)
}
