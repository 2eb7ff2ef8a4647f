// Package company scrapes job listings directly from employer career sites.
package company

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

const Name = "Company Website"

type Extractor struct {
	employers []Employer
	enabled   bool
	harvester *scrape.Harvester
	logger    *slog.Logger
	now       func() time.Time
}

func New(cfg config.CompanySitesConfig, harvester *scrape.Harvester, logger *slog.Logger) *Extractor {
	return &Extractor{
		employers: EmployersFromConfig(cfg.Employers),
		enabled:   cfg.IsEnabled(),
		harvester: harvester,
		logger:    logger.With("source", Name),
		now:       time.Now,
	}
}

func (e *Extractor) Name() string  { return Name }
func (e *Extractor) Enabled() bool { return e.enabled }

// SearchByKeywords sweeps every employer for every keyword. The budget is
// split across employer x keyword pairs and the sweep stops once maxResults
// postings are collected.
func (e *Extractor) SearchByKeywords(ctx context.Context, keywords []string, maxResults int) ([]domain.JobPosting, error) {
	units := make([]scrape.Unit, 0, len(e.employers)*len(keywords))
	for i := range e.employers {
		emp := &e.employers[i]
		for _, k := range keywords {
			units = append(units, scrape.Unit{
				Keyword:   k,
				Employer:  emp.Name,
				SearchURL: searchURL(emp.SearchURL, k),
				Detail: func(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
					return e.fetchWith(ctx, emp, rawURL)
				},
			})
		}
	}

	e.logger.Info("searching",
		"employers", len(e.employers),
		"keywords", len(keywords),
		"max_results", maxResults,
	)

	return e.harvester.Run(ctx, units, maxResults, e.parseListing, nil)
}

func searchURL(base, keyword string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "q=" + url.QueryEscape(keyword)
}

func (e *Extractor) employer(name string) *Employer {
	for i := range e.employers {
		if e.employers[i].Name == name {
			return &e.employers[i]
		}
	}
	return nil
}

func (e *Extractor) parseListing(page *scrape.Page, unit scrape.Unit) []domain.JobPosting {
	emp := e.employer(unit.Employer)
	if emp == nil || emp.CardSelector == "" {
		return nil
	}

	var postings []domain.JobPosting
	page.Doc.Find(emp.CardSelector).Each(func(_ int, card *goquery.Selection) {
		p := domain.JobPosting{
			Title:          scrape.Text(find(card, emp.TitleSelector), domain.UnknownTitle),
			EmployerName:   emp.Name,
			Location:       scrape.OptionalText(find(card, emp.LocationSelector)),
			OriginURL:      scrape.ResolveURL(page.URL, scrape.Attr(find(card, emp.URLSelector), emp.URLAttribute)),
			SourcePlatform: platform(emp),
		}
		if p.OriginURL == "" {
			return
		}
		if emp.DateSelector != "" {
			p.PostingDate = scrape.ParseRelativeDate(find(card, emp.DateSelector).Text(), e.now())
		}
		p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title)

		postings = append(postings, p)
	})

	return postings
}

// FetchByURL picks the employer whose name appears in rawURL. It returns nil
// when no configured employer matches.
func (e *Extractor) FetchByURL(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
	lower := strings.ToLower(rawURL)
	for i := range e.employers {
		if strings.Contains(lower, strings.ToLower(e.employers[i].Name)) {
			return e.fetchWith(ctx, &e.employers[i], rawURL)
		}
	}

	e.logger.Debug("no employer matches url", "url", rawURL)
	return nil, nil
}

func (e *Extractor) fetchWith(ctx context.Context, emp *Employer, rawURL string) (*domain.JobPosting, error) {
	page, err := e.harvester.Client().Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !page.OK() {
		e.logger.Warn("job page returned non-success status",
			"employer", emp.Name,
			"url", rawURL,
			"status", page.StatusCode,
		)
		return nil, nil
	}

	p := parseDetail(page.Doc, emp, rawURL)
	if p != nil {
		scrape.Finalize(p, e.now())
	}
	return p, nil
}

func parseDetail(doc *goquery.Document, emp *Employer, rawURL string) *domain.JobPosting {
	title := scrape.FirstText(doc.Selection, "h1", "h2[class*='job-title']", "h2")
	if title == "" {
		return nil
	}

	p := &domain.JobPosting{
		Title:          title,
		EmployerName:   emp.Name,
		Location:       scrape.Ptr(scrape.FirstText(doc.Selection, "span[class*='location']", "div[class*='location']")),
		Description:    scrape.InnerHTML(find(doc.Selection, emp.DescriptionSelector)),
		OriginURL:      rawURL,
		SourcePlatform: platform(emp),
	}
	p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location), p.Title, p.Description)
	p.EmploymentType = scrape.EmploymentType(p.Description)

	return p
}

// TestConnection reports whether at least one career site is reachable.
func (e *Extractor) TestConnection(ctx context.Context) bool {
	for _, emp := range e.employers {
		if e.harvester.Client().Probe(ctx, emp.SearchURL) {
			return true
		}
	}
	return false
}

func platform(emp *Employer) string {
	return Name + " - " + emp.Name
}

// find returns an empty selection for a blank selector.
func find(root *goquery.Selection, selector string) *goquery.Selection {
	if selector == "" {
		return root.FilterFunction(func(int, *goquery.Selection) bool { return false })
	}
	return root.Find(selector)
}
