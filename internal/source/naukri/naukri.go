// Package naukri scrapes the Naukri job board.
package naukri

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
	Name           = "Naukri"
	DefaultBaseURL = "https://www.naukri.com"
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
		units = append(units, scrape.Unit{
			Keyword:   k,
			SearchURL: e.base.String() + "/jobs-" + url.PathEscape(k),
		})
	}

	e.logger.Info("searching", "keywords", len(keywords), "max_results", maxResults)

	return e.harvester.Run(ctx, units, maxResults, e.parseListing, e.FetchByURL)
}

func (e *Extractor) parseListing(page *scrape.Page, _ scrape.Unit) []domain.JobPosting {
	var postings []domain.JobPosting

	page.Doc.Find("article[class*='jobTuple']").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("a[class*='title']").First()
		link := scrape.ResolveURL(page.URL, scrape.Attr(titleLink, "href"))
		if link == "" {
			return
		}

		p := domain.JobPosting{
			Title:          scrape.Text(titleLink, domain.UnknownTitle),
			EmployerName:   scrape.Text(card.Find("a[class*='companyName']"), domain.UnknownCompany),
			Location:       scrape.OptionalText(card.Find("span[class*='location']")),
			Description:    scrape.InnerHTML(card.Find("div[class*='job-description']")),
			OriginURL:      link,
			SourcePlatform: Name,
			EmploymentType: scrape.OptionalText(card.Find("span[class*='jobType']")),
			PostingDate:    scrape.ParseRelativeDate(card.Find("span[class*='postedDate']").Text(), e.now()),
		}
		p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title, remoteBadge(card))

		postings = append(postings, p)
	})

	return postings
}

// remoteBadge returns the text of a span announcing remote work, if any.
func remoteBadge(root *goquery.Selection) string {
	return root.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(strings.ToLower(s.Text()), "remote")
	}).First().Text()
}

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
	title := scrape.FirstText(doc.Selection, "h1[class*='jd-header-title']", "h1")
	if title == "" {
		return nil
	}

	p := &domain.JobPosting{
		Title:          title,
		EmployerName:   scrape.Text(doc.Find("a[class*='company-name']"), domain.UnknownCompany),
		Location:       scrape.OptionalText(doc.Find("span[class*='location']")),
		Description:    scrape.InnerHTML(doc.Find("div[class*='job-description']")),
		OriginURL:      rawURL,
		SourcePlatform: Name,
		EmploymentType: scrape.OptionalText(doc.Find("span[class*='jobType']")),
		PostingDate:    scrape.ParseRelativeDate(doc.Find("span[class*='posted-date']").Text(), e.now()),
	}
	p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title, p.Description, remoteBadge(doc.Selection))

	return p
}

func (e *Extractor) TestConnection(ctx context.Context) bool {
	return e.harvester.Client().Probe(ctx, e.base.String())
}
