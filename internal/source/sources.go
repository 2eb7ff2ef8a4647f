// Package source wires the configured extractors.
package source

import (
	"log/slog"

	"job_aggregator/internal/config"
	"job_aggregator/internal/service"
	"job_aggregator/internal/source/company"
	"job_aggregator/internal/source/internshala"
	"job_aggregator/internal/source/linkedin"
	"job_aggregator/internal/source/naukri"
	"job_aggregator/internal/source/scrape"
)

// Build returns every known extractor in a fixed order. Disabled extractors
// are included and report Enabled() == false. Each source gets its own
// harvester so detail pacing is per site.
func Build(cfg *config.Config, logger *slog.Logger) []service.Extractor {
	client := scrape.NewClient(scrape.ClientConfig{
		Timeout:        cfg.HTTP.Timeout,
		UserAgent:      cfg.HTTP.UserAgent,
		Accept:         cfg.HTTP.Accept,
		AcceptLanguage: cfg.HTTP.AcceptLanguage,
	})

	harvester := func(name string) *scrape.Harvester {
		return scrape.NewHarvester(client, cfg.Sources.DetailDelay, logger.With("source", name))
	}

	return []service.Extractor{
		linkedin.New(cfg.Sources.LinkedIn, harvester(linkedin.Name), logger),
		internshala.New(cfg.Sources.Internshala, harvester(internshala.Name), logger),
		naukri.New(cfg.Sources.Naukri, harvester(naukri.Name), logger),
		company.New(cfg.Sources.Company, harvester(company.Name), logger),
	}
}
