package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/fingerprint"
)

// Unit is one listing fetch: a keyword, optionally scoped to an employer.
type Unit struct {
	Keyword   string
	Employer  string
	SearchURL string
	// Detail overrides the sweep's detail fetcher for this unit.
	Detail DetailFetcher
}

// ListingParser extracts summary postings from a listing page.
type ListingParser func(page *Page, unit Unit) []domain.JobPosting

// DetailFetcher loads the detail page of a posting. A nil posting means the
// page could not be parsed.
type DetailFetcher func(ctx context.Context, rawURL string) (*domain.JobPosting, error)

// Harvester runs the listing -> detail sweep shared by all extractors.
type Harvester struct {
	client  *Client
	limiter *rate.Limiter
	logger  *slog.Logger
	now     func() time.Time
}

// NewHarvester paces detail fetches at one per detailDelay.
func NewHarvester(client *Client, detailDelay time.Duration, logger *slog.Logger) *Harvester {
	limit := rate.Inf
	if detailDelay > 0 {
		limit = rate.Every(detailDelay)
	}
	return &Harvester{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
		now:     time.Now,
	}
}

func (h *Harvester) Client() *Client {
	return h.client
}

// Budget splits maxResults evenly across units. Every unit gets at least one
// slot so that large keyword sets do not silence a source; the overall cap
// still applies in Run.
func Budget(maxResults, units int) int {
	if maxResults <= 0 || units <= 0 {
		return 0
	}
	return max(1, maxResults/units)
}

// Run sweeps units in order and returns at most maxResults postings. A
// failing unit is logged and skipped. The sweep stops with an error only
// when ctx is done or its deadline leaves no room for the next paced
// detail fetch; whatever was collected is returned with it.
func (h *Harvester) Run(
	ctx context.Context,
	units []Unit,
	maxResults int,
	parseListing ListingParser,
	fetchDetail DetailFetcher,
) ([]domain.JobPosting, error) {
	perUnit := Budget(maxResults, len(units))
	if perUnit == 0 {
		return nil, nil
	}

	var results []domain.JobPosting
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		remaining := maxResults - len(results)
		if remaining <= 0 {
			h.logger.Debug("result cap reached", "max_results", maxResults)
			break
		}

		postings, err := h.runUnit(ctx, unit, min(perUnit, remaining), parseListing, fetchDetail)
		results = append(results, postings...)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (h *Harvester) runUnit(
	ctx context.Context,
	unit Unit,
	budget int,
	parseListing ListingParser,
	fetchDetail DetailFetcher,
) (results []domain.JobPosting, err error) {
	logger := h.logger.With("keyword", unit.Keyword)
	if unit.Employer != "" {
		logger = logger.With("employer", unit.Employer)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while scraping", "panic", fmt.Sprint(r))
			err = nil
		}
	}()

	page, err := h.client.Get(ctx, unit.SearchURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logFetchError(logger, "fetch listing failed", unit.SearchURL, err)
		return nil, nil
	}
	if !page.OK() {
		logger.Warn("listing returned non-success status", "url", unit.SearchURL, "status", page.StatusCode)
		return nil, nil
	}

	cards := parseListing(page, unit)
	logger.Debug("parsed listing", "cards", len(cards))
	if len(cards) > budget {
		cards = cards[:budget]
	}

	if unit.Detail != nil {
		fetchDetail = unit.Detail
	}

	for i := range cards {
		posting := cards[i]

		if fetchDetail != nil && posting.OriginURL != "" {
			if err := h.limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return results, ctx.Err()
				}
				logger.Warn("deadline too close for next detail fetch, stopping sweep",
					"url", posting.OriginURL,
					"collected", len(results),
					"error", err,
				)
				return results, fmt.Errorf("pace detail fetch: %w", err)
			}
			detail, err := fetchDetail(ctx, posting.OriginURL)
			switch {
			case err != nil && ctx.Err() != nil:
				return results, ctx.Err()
			case err != nil:
				logFetchError(logger, "fetch detail failed, keeping summary", posting.OriginURL, err)
			case detail == nil:
				logger.Debug("detail page not parsed, keeping summary", "url", posting.OriginURL)
			default:
				MergeDetail(&posting, detail)
			}
		}

		h.Finalize(&posting)
		results = append(results, posting)
	}

	return results, nil
}

// Finalize stamps identity, timestamps and fingerprint on a scraped posting.
func (h *Harvester) Finalize(p *domain.JobPosting) {
	Finalize(p, h.now())
}

func Finalize(p *domain.JobPosting, now time.Time) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.FirstScrapedAt.IsZero() {
		p.FirstScrapedAt = now
	}
	if p.LastSeenAt.Before(p.FirstScrapedAt) {
		p.LastSeenAt = p.FirstScrapedAt
	}
	p.IsActive = true
	p.Fingerprint = fingerprint.ForPosting(p.OriginURL, p.Title, p.EmployerName)
}

// MergeDetail overlays what the detail page knows onto the summary card.
// Sentinel or empty detail values never replace summary values.
func MergeDetail(summary, detail *domain.JobPosting) {
	if !isSentinel(detail.Title) {
		summary.Title = detail.Title
	}
	if !isSentinel(detail.EmployerName) {
		summary.EmployerName = detail.EmployerName
	}
	if detail.Description != "" {
		summary.Description = detail.Description
	}
	if detail.Location != nil {
		summary.Location = detail.Location
	}
	if detail.PostingDate != nil {
		summary.PostingDate = detail.PostingDate
	}
	if detail.EmploymentType != nil {
		summary.EmploymentType = detail.EmploymentType
	}
	if detail.IsRemote != nil && (summary.IsRemote == nil || *detail.IsRemote) {
		summary.IsRemote = detail.IsRemote
	}
	if detail.Compensation != nil {
		summary.Compensation = detail.Compensation
	}
	if detail.Duration != nil {
		summary.Duration = detail.Duration
	}
}

func isSentinel(s string) bool {
	switch s {
	case "", domain.UnknownTitle, domain.UnknownInternship, domain.UnknownCompany:
		return true
	}
	return false
}

func logFetchError(logger *slog.Logger, msg, rawURL string, err error) {
	var netErr net.Error
	if errors.As(err, &netErr) {
		logger.Warn(msg, "url", rawURL, "error", err, "timeout", netErr.Timeout())
		return
	}
	logger.Warn(msg, "url", rawURL, "error", err)
}
