package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"job_aggregator/internal/domain"
)

// Pipeline runs one aggregate -> merge -> notify cycle.
type Pipeline struct {
	keywords   KeywordStore
	runLogs    RunLogStore
	aggregator *Aggregator
	merger     *Merger
	notifier   *Notifier
	maxResults int
	logger     *slog.Logger
	now        func() time.Time
}

func NewPipeline(
	keywords KeywordStore,
	runLogs RunLogStore,
	aggregator *Aggregator,
	merger *Merger,
	notifier *Notifier,
	maxResultsPerSource int,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		keywords:   keywords,
		runLogs:    runLogs,
		aggregator: aggregator,
		merger:     merger,
		notifier:   notifier,
		maxResults: maxResultsPerSource,
		logger:     logger.With("component", "pipeline"),
		now:        time.Now,
	}
}

// Run executes one cycle. Search terms are the distinct keyword texts of all
// users; with none, the cycle ends without scraping. Notification runs only
// when the merge inserted new postings.
func (p *Pipeline) Run(ctx context.Context) (*domain.CycleStats, error) {
	start := p.now()
	stats := &domain.CycleStats{StartedAt: start}

	interests, err := p.keywords.ListInterests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}

	keywords := DistinctKeywords(interests)
	stats.Keywords = len(keywords)
	if len(keywords) == 0 {
		p.logger.Info("no keyword interests, skipping cycle")
		stats.Duration = p.now().Sub(start)
		return stats, nil
	}

	p.logger.Info("starting cycle", "keywords", len(keywords), "max_results_per_source", p.maxResults)

	postings, logs := p.aggregator.Aggregate(ctx, keywords, p.maxResults)
	stats.Scraped = len(postings)
	for _, l := range logs {
		if l.Status == domain.RunSuccess {
			stats.SourcesOK++
		} else {
			stats.SourcesFailed++
		}
	}

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("aggregate: %w", err)
	}

	result, err := p.merger.MergeAndPersist(ctx, postings)
	if err != nil {
		return stats, fmt.Errorf("merge postings: %w", err)
	}
	stats.New = result.New
	stats.Updated = result.Updated
	stats.Failed = result.Failed

	p.recordNewlyAdded(ctx, logs, result.NewBySource)

	if result.New > 0 {
		alerts, err := p.notifier.Notify(ctx, start)
		if err != nil {
			return stats, fmt.Errorf("notify: %w", err)
		}
		stats.Alerts = len(alerts)
	}

	stats.Duration = p.now().Sub(start)

	p.logger.Info("cycle completed",
		"keywords", stats.Keywords,
		"scraped", stats.Scraped,
		"new", stats.New,
		"updated", stats.Updated,
		"failed", stats.Failed,
		"alerts", stats.Alerts,
		"sources_ok", stats.SourcesOK,
		"sources_failed", stats.SourcesFailed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (p *Pipeline) recordNewlyAdded(ctx context.Context, logs []domain.SourceRunLog, newBySource map[string]int) {
	for _, l := range logs {
		n := newBySource[l.SourceID]
		if n == 0 || l.ID == 0 {
			continue
		}
		if err := p.runLogs.SetNewlyAdded(ctx, l.ID, n); err != nil {
			p.logger.Warn("failed to record newly added count", "source", l.SourceID, "error", err)
		}
	}
}

// DistinctKeywords returns the trimmed keyword texts, deduplicated
// case-insensitively, in first-seen order.
func DistinctKeywords(interests []domain.KeywordInterest) []string {
	seen := make(map[string]struct{}, len(interests))
	var out []string
	for _, in := range interests {
		text := strings.TrimSpace(in.Text)
		if text == "" {
			continue
		}
		key := strings.ToLower(text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, text)
	}
	return out
}
