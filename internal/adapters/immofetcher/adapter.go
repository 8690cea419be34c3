package immofetcher

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/constants"
)

// Config holds the per-fetch knobs for the Immobiliare adapter.
type Config struct {
	// UserAgent overrides the default browser user agent. When empty, a
	// random real-browser user agent is rotated per request.
	UserAgent string
	// Timeout bounds each page fetch independently. Default 20s.
	Timeout time.Duration
	// Parallelism caps concurrent HTTP requests at the collector level.
	Parallelism int
	// AssetDomain filters photo URLs. Default constants.AssetDomain.
	AssetDomain string
}

// ImmoFetcherAdapter owns all interaction with Immobiliare.it search pages.
type ImmoFetcherAdapter struct {
	// parent collector; clones share its limits and transport settings
	collector   *colly.Collector
	assetDomain string
}

// NewImmoFetcherAdapter builds the parent collector. Search URLs may point
// at any host the operator provides, so no AllowedDomains restriction is
// set here.
func NewImmoFetcherAdapter(cfg Config) (*ImmoFetcherAdapter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 4
	}
	if cfg.AssetDomain == "" {
		cfg.AssetDomain = constants.AssetDomain
	}

	opts := []colly.CollectorOption{colly.AllowURLRevisit()}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}

	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(cfg.Timeout)

	// Inherited by every clone of the collector.
	err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: cfg.Parallelism,
	})
	if err != nil {
		return nil, fmt.Errorf("immo fetcher: failed to set limit rule: %w", err)
	}

	if cfg.UserAgent == "" {
		extensions.RandomUserAgent(c)
	}
	extensions.Referer(c)

	return &ImmoFetcherAdapter{
		collector:   c,
		assetDomain: cfg.AssetDomain,
	}, nil
}
