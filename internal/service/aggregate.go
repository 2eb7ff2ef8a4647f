package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/metrics"
)

// Aggregator runs every enabled extractor for a batch of keywords.
type Aggregator struct {
	extractors  []Extractor
	runLogs     RunLogStore
	concurrency int
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

func NewAggregator(
	extractors []Extractor,
	runLogs RunLogStore,
	concurrency int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		extractors:  extractors,
		runLogs:     runLogs,
		concurrency: concurrency,
		metrics:     m,
		logger:      logger.With("component", "aggregator"),
		now:         time.Now,
	}
}

type sourceResult struct {
	postings []domain.JobPosting
	log      domain.SourceRunLog
}

// Aggregate returns the concatenation of all enabled sources' postings in
// extractor order, with no cross-source dedup, and one run log per source.
// A source that fails or panics contributes no postings.
func (a *Aggregator) Aggregate(ctx context.Context, keywords []string, maxResultsPerSource int) ([]domain.JobPosting, []domain.SourceRunLog) {
	var enabled []Extractor
	for _, e := range a.extractors {
		if e.Enabled() {
			enabled = append(enabled, e)
		}
	}

	results := make([]sourceResult, len(enabled))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, e := range enabled {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = a.runSource(ctx, e, keywords, maxResultsPerSource)
			return nil
		})
	}
	_ = g.Wait()

	var postings []domain.JobPosting
	var logs []domain.SourceRunLog
	for _, r := range results {
		if r.log.SourceID == "" {
			continue
		}
		postings = append(postings, r.postings...)
		logs = append(logs, r.log)
	}

	return postings, logs
}

func (a *Aggregator) runSource(ctx context.Context, e Extractor, keywords []string, maxResults int) (res sourceResult) {
	logger := a.logger.With("source", e.Name())

	res.log = domain.SourceRunLog{
		SourceID:  e.Name(),
		StartedAt: a.now(),
		Status:    domain.RunRunning,
	}
	if err := a.runLogs.Start(ctx, &res.log); err != nil {
		logger.Warn("failed to record run start", "error", err)
	}

	defer func() {
		if r := recover(); r != nil {
			res.postings = nil
			a.finish(ctx, logger, &res.log, 0, fmt.Errorf("panic: %v", r))
		}
	}()

	logger.Info("running source", "keywords", len(keywords), "max_results", maxResults)

	postings, err := e.SearchByKeywords(ctx, keywords, maxResults)
	if err != nil {
		a.finish(ctx, logger, &res.log, 0, err)
		return res
	}

	res.postings = postings
	a.finish(ctx, logger, &res.log, len(postings), nil)
	return res
}

func (a *Aggregator) finish(ctx context.Context, logger *slog.Logger, log *domain.SourceRunLog, found int, runErr error) {
	ended := a.now()
	log.EndedAt = &ended
	log.PostingsFound = found
	log.Status = domain.RunSuccess
	if runErr != nil {
		log.Status = domain.RunFailed
		msg := runErr.Error()
		log.Message = &msg
		logger.Error("source failed", "error", runErr)
	} else {
		logger.Info("source finished", "found", found, "duration", ended.Sub(log.StartedAt))
	}

	a.metrics.ObserveSourceRun(log.SourceID, string(log.Status), found)

	// The run log outlives a cancelled cycle.
	if err := a.runLogs.Finish(context.WithoutCancel(ctx), log); err != nil {
		logger.Warn("failed to record run finish", "error", err)
	}
}
