package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/matcher"
	"job_aggregator/internal/metrics"
)

// summaryKeywords is how many keywords a summary alert names.
const summaryKeywords = 3

// Notifier turns newly added postings into per-user alerts.
type Notifier struct {
	postings  PostingStore
	keywords  KeywordStore
	alerts    AlertStore
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotifier creates a notifier. publisher may be nil.
func NewNotifier(
	postings PostingStore,
	keywords KeywordStore,
	alerts AlertStore,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Notifier {
	return &Notifier{
		postings:  postings,
		keywords:  keywords,
		alerts:    alerts,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "notifier"),
		now:       time.Now,
	}
}

// Notify alerts every user whose keywords match an active posting first
// scraped at or after since. A user matching one posting gets a SingleMatch
// alert; a user matching several gets one SummaryMatch alert. All alerts are
// stored in one batch.
func (n *Notifier) Notify(ctx context.Context, since time.Time) ([]domain.AlertRecord, error) {
	interests, err := n.keywords.ListInterests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}

	idx := matcher.NewIndex(interests)
	if len(idx.Users()) == 0 {
		n.logger.Debug("no keyword interests")
		return nil, nil
	}

	postings, err := n.postings.ListActiveSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}

	matches := make(map[string][]*domain.JobPosting)
	for i := range postings {
		p := &postings[i]
		if !p.IsActive || p.FirstScrapedAt.Before(since) {
			continue
		}
		for _, user := range idx.Match(p) {
			matches[user] = append(matches[user], p)
		}
	}

	now := n.now()
	var alerts []domain.AlertRecord
	for _, user := range idx.Users() {
		matched := matches[user]
		switch len(matched) {
		case 0:
			continue
		case 1:
			alerts = append(alerts, singleAlert(user, matched[0], now))
		default:
			alerts = append(alerts, summaryAlert(user, len(matched), idx.Keywords(user), now))
		}
	}

	if len(alerts) == 0 {
		n.logger.Info("no matching postings", "postings", len(postings), "users", len(idx.Users()))
		return nil, nil
	}

	if err := n.alerts.InsertBatch(ctx, alerts); err != nil {
		return nil, fmt.Errorf("insert alerts: %w", err)
	}

	for i := range alerts {
		n.metrics.ObserveAlert(string(alerts[i].Kind))
	}

	n.publish(ctx, alerts)

	n.logger.Info("alerts created",
		"alerts", len(alerts),
		"postings", len(postings),
		"users", len(idx.Users()),
	)

	return alerts, nil
}

func (n *Notifier) publish(ctx context.Context, alerts []domain.AlertRecord) {
	if n.publisher == nil {
		return
	}
	for i := range alerts {
		if err := n.publisher.PublishAlert(ctx, &alerts[i]); err != nil {
			n.logger.Warn("failed to publish alert",
				"alert_id", alerts[i].ID,
				"user_id", alerts[i].UserID,
				"error", err,
			)
		}
	}
}

func singleAlert(userID string, p *domain.JobPosting, now time.Time) domain.AlertRecord {
	postingID := p.ID
	return domain.AlertRecord{
		ID:        uuid.New(),
		UserID:    userID,
		PostingID: &postingID,
		Kind:      domain.AlertSingleMatch,
		Title:     "New Job: " + p.Title,
		Message:   fmt.Sprintf("New job at %s: %s", p.EmployerName, p.Title),
		CreatedAt: now,
	}
}

func summaryAlert(userID string, count int, keywords []string, now time.Time) domain.AlertRecord {
	if len(keywords) > summaryKeywords {
		keywords = keywords[:summaryKeywords]
	}
	return domain.AlertRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      domain.AlertSummaryMatch,
		Title:     fmt.Sprintf("New Jobs Found: %d new matches", count),
		Message:   fmt.Sprintf("We found %d new jobs matching your keywords: %s", count, strings.Join(keywords, ", ")),
		CreatedAt: now,
	}
}
