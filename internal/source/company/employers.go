package company

import (
	"slices"

	"job_aggregator/internal/config"
)

// Employer describes how to scrape one career site. Selectors are CSS and
// are evaluated relative to a job card, except DescriptionSelector which is
// evaluated against the detail page.
type Employer struct {
	Name                string
	SearchURL           string
	CardSelector        string
	TitleSelector       string
	LocationSelector    string
	URLSelector         string
	URLAttribute        string
	DescriptionSelector string
	DateSelector        string
}

// DefaultEmployers is used when no employers are configured.
var DefaultEmployers = []Employer{
	{
		Name:                "Microsoft",
		SearchURL:           "https://careers.microsoft.com/us/en/search-results",
		CardSelector:        "div[class*='job-card']",
		TitleSelector:       "h3[class*='job-title']",
		LocationSelector:    "span[class*='job-location']",
		URLSelector:         "a[class*='job-link']",
		URLAttribute:        "href",
		DescriptionSelector: "div[class*='job-description']",
		DateSelector:        "span[class*='job-date']",
	},
	{
		Name:                "Google",
		SearchURL:           "https://careers.google.com/jobs/results/",
		CardSelector:        "li[class*='job-search-results__list-item']",
		TitleSelector:       "h2[class*='gc-card__title']",
		LocationSelector:    "span[class*='gc-job-tags__location']",
		URLSelector:         "a[class*='gc-card__link']",
		URLAttribute:        "href",
		DescriptionSelector: "div[class*='gc-job-detail__description']",
	},
	{
		Name:                "Amazon",
		SearchURL:           "https://www.amazon.jobs/en/search",
		CardSelector:        "div[class*='job-tile']",
		TitleSelector:       "h3[class*='job-title']",
		LocationSelector:    "p[class*='location']",
		URLSelector:         "a[class*='job-link']",
		URLAttribute:        "href",
		DescriptionSelector: "div[class*='job-description']",
		DateSelector:        "span[class*='posting-date']",
	},
}

// EmployersFromConfig converts configured employers, falling back to
// DefaultEmployers when none are given.
func EmployersFromConfig(cfgs []config.EmployerConfig) []Employer {
	if len(cfgs) == 0 {
		return slices.Clone(DefaultEmployers)
	}

	employers := make([]Employer, 0, len(cfgs))
	for _, c := range cfgs {
		e := Employer{
			Name:                c.Name,
			SearchURL:           c.SearchURL,
			CardSelector:        c.CardSelector,
			TitleSelector:       c.TitleSelector,
			LocationSelector:    c.LocationSelector,
			URLSelector:         c.URLSelector,
			URLAttribute:        c.URLAttribute,
			DescriptionSelector: c.DescriptionSelector,
			DateSelector:        c.DateSelector,
		}
		if e.URLAttribute == "" {
			e.URLAttribute = "href"
		}
		employers = append(employers, e)
	}
	return employers
}
