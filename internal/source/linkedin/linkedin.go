// Package linkedin scrapes the public LinkedIn job search.
package linkedin

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"job_aggregator/internal/config"
	"job_aggregator/internal/domain"
	"job_aggregator/internal/source/scrape"
)

const (
	Name           = "LinkedIn"
	DefaultBaseURL = "https://www.linkedin.com/jobs"
)

type Extractor struct {
	base      *url.URL
	enabled   bool
	harvester *scrape.Harvester
	logger    *slog.Logger
	now       func() time.Time
}

func New(cfg config.SourceToggle, harvester *scrape.Harvester, logger *slog.Logger) *Extractor {
	return &Extractor{
		base:      scrape.ParseBase(cfg.BaseURL, DefaultBaseURL),
		enabled:   cfg.IsEnabled(),
		harvester: harvester,
		logger:    logger.With("source", Name),
		now:       time.Now,
	}
}

func (e *Extractor) Name() string  { return Name }
func (e *Extractor) Enabled() bool { return e.enabled }

func (e *Extractor) SearchByKeywords(ctx context.Context, keywords []string, maxResults int) ([]domain.JobPosting, error) {
	units := make([]scrape.Unit, 0, len(keywords))
	for _, k := range keywords {
		units = append(units, scrape.Unit{Keyword: k, SearchURL: e.searchURL(k)})
	}

	e.logger.Info("searching", "keywords", len(keywords), "max_results", maxResults)

	return e.harvester.Run(ctx, units, maxResults, e.parseListing, e.FetchByURL)
}

func (e *Extractor) searchURL(keyword string) string {
	q := url.Values{}
	q.Set("keywords", keyword)
	q.Set("position", "1")
	q.Set("pageNum", "0")
	return e.base.String() + "/search?" + q.Encode()
}

func (e *Extractor) parseListing(page *scrape.Page, _ scrape.Unit) []domain.JobPosting {
	var postings []domain.JobPosting

	page.Doc.Find("li[class*='job-search-card']").Each(func(_ int, card *goquery.Selection) {
		link := scrape.StripQuery(scrape.ResolveURL(page.URL, scrape.Attr(card.Find("a[class*='base-card__full-link']"), "href")))
		if link == "" {
			return
		}

		p := domain.JobPosting{
			Title:          scrape.Text(card.Find("h3[class*='base-search-card__title']"), domain.UnknownTitle),
			EmployerName:   scrape.Text(card.Find("h4[class*='base-search-card__subtitle']"), domain.UnknownCompany),
			Location:       scrape.OptionalText(card.Find("span[class*='job-search-card__location']")),
			OriginURL:      link,
			SourcePlatform: Name,
		}

		if dt := scrape.Attr(card.Find("time"), "datetime"); dt != "" {
			p.PostingDate = scrape.ParseAbsoluteDate(dt)
		}
		if p.PostingDate == nil {
			p.PostingDate = scrape.ParseRelativeDate(card.Find("time").Text(), e.now())
		}
		p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title)

		postings = append(postings, p)
	})

	return postings
}

// FetchByURL parses a LinkedIn job view page.
func (e *Extractor) FetchByURL(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
	page, err := e.harvester.Client().Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !page.OK() {
		e.logger.Warn("job page returned non-success status", "url", rawURL, "status", page.StatusCode)
		return nil, nil
	}

	p := e.parseDetail(page.Doc, rawURL)
	if p != nil {
		scrape.Finalize(p, e.now())
	}
	return p, nil
}

func (e *Extractor) parseDetail(doc *goquery.Document, rawURL string) *domain.JobPosting {
	title := scrape.FirstText(doc.Selection, "h1[class*='job-title']", "h1[class*='top-card-layout__title']")
	if title == "" {
		return nil
	}

	p := &domain.JobPosting{
		Title:          title,
		EmployerName:   scrape.Text(doc.Find("a[class*='company-name']"), domain.UnknownCompany),
		Location:       scrape.OptionalText(doc.Find("span[class*='job-location']")),
		Description:    scrape.InnerHTML(doc.Find("div[class*='description__text']")),
		OriginURL:      scrape.StripQuery(rawURL),
		SourcePlatform: Name,
	}

	label := doc.Find("span, h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Employment type")
	}).First()
	p.EmploymentType = scrape.OptionalText(label.NextAllFiltered("span"))

	p.PostingDate = scrape.ParseRelativeDate(doc.Find("span[class*='posted-date'], span[class*='posted-time-ago']").First().Text(), e.now())
	p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title, p.Description)

	return p
}

func (e *Extractor) TestConnection(ctx context.Context) bool {
	return e.harvester.Client().Probe(ctx, e.base.String())
}

