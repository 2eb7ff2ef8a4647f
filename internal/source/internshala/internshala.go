// Package internshala scrapes internship listings from Internshala.
package internshala

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
	Name           = "Internshala"
	DefaultBaseURL = "https://internshala.com"

	employmentType = "Internship"
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

// searchURL builds /internships/{slug}-internship.
func (e *Extractor) searchURL(keyword string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(keyword)), "-")
	return e.base.String() + "/internships/" + url.PathEscape(slug) + "-internship"
}

func (e *Extractor) parseListing(page *scrape.Page, _ scrape.Unit) []domain.JobPosting {
	var postings []domain.JobPosting

	page.Doc.Find("div[class*='internship_meta']").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("a[class*='view_detail_button']").First()
		link := scrape.ResolveURL(page.URL, scrape.Attr(titleLink, "href"))
		if link == "" {
			return
		}

		p := domain.JobPosting{
			Title:          scrape.Text(titleLink, domain.UnknownInternship),
			EmployerName:   scrape.Text(card.Find("a[class*='link_display_like_text']"), domain.UnknownCompany),
			Location:       scrape.OptionalText(card.Find("div[class*='location_meta']")),
			OriginURL:      link,
			SourcePlatform: Name,
			EmploymentType: scrape.Ptr(employmentType),
			Compensation:   scrape.OptionalText(card.Find("span[class*='stipend']")),
			PostingDate:    scrape.ParseApplyBy(card.Find("div[class*='apply_by']").Text()),
			Duration:       duration(card, "div[class*='internship_other_details_container']"),
		}
		p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location))

		postings = append(postings, p)
	})

	return postings
}

func (e *Extractor) FetchByURL(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
	page, err := e.harvester.Client().Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !page.OK() {
		e.logger.Warn("internship page returned non-success status", "url", rawURL, "status", page.StatusCode)
		return nil, nil
	}

	p := e.parseDetail(page.Doc, rawURL)
	if p != nil {
		scrape.Finalize(p, e.now())
	}
	return p, nil
}

func (e *Extractor) parseDetail(doc *goquery.Document, rawURL string) *domain.JobPosting {
	details := doc.Find("div[class*='internship_details']").First()
	titleSel := doc.Find("div[class*='profile_on_detail_page']")
	if titleSel.Length() == 0 && details.Length() == 0 {
		return nil
	}

	p := &domain.JobPosting{
		Title:          scrape.Text(titleSel, domain.UnknownInternship),
		EmployerName:   scrape.Text(doc.Find("div[class*='company_name']"), domain.UnknownCompany),
		Location:       scrape.OptionalText(doc.Find("div[class*='location_name']")),
		Description:    scrape.InnerHTML(details),
		OriginURL:      rawURL,
		SourcePlatform: Name,
		EmploymentType: scrape.Ptr(employmentType),
		PostingDate:    scrape.ParseApplyBy(doc.Find("div[class*='apply_by']").Text()),
		Duration:       duration(doc.Selection, "div[class*='internship_details']"),
	}

	stipend := doc.Find("div[class*='stipend_container']")
	if s := stipend.Find("span[class*='stipend']"); s.Length() > 0 {
		p.Compensation = scrape.OptionalText(s)
	} else {
		p.Compensation = scrape.OptionalText(stipend)
	}
	p.IsRemote = scrape.IsRemote(scrape.Deref(p.Location))

	return p
}

// duration prefers the item whose heading says "Duration" and otherwise
// takes the first item body inside container.
func duration(root *goquery.Selection, container string) *string {
	box := root.Find(container)

	var found *string
	box.Find("div[class*='item_heading']").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(h.Text()), "duration") {
			found = scrape.OptionalText(h.NextFiltered("div[class*='item_body']"))
			if found == nil {
				found = scrape.OptionalText(h.Parent().Find("div[class*='item_body']"))
			}
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	return scrape.OptionalText(box.ChildrenFiltered("div[class*='item_body']"))
}

func (e *Extractor) TestConnection(ctx context.Context) bool {
	return e.harvester.Client().Probe(ctx, e.base.String())
}
