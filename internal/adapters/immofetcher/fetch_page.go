package immofetcher

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/constants"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// FetchListings fetches one search-result page and extracts its records.
// Transport failures (timeout, non-success status, connection error) come
// back as an error with no records; a page that parses but matches nothing
// yields an empty slice.
func (a *ImmoFetcherAdapter) FetchListings(ctx context.Context, pageURL string) ([]domain.ListingRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	fetchLogger := logger.WithFields(port.Fields{"component": "ImmoFetcherAdapter(FetchListings)"})

	collector := a.collector.Clone()

	var records []domain.ListingRecord
	var responseErr error

	collector.OnRequest(func(r *colly.Request) {
		fetchLogger.Debug("Fetching page", port.Fields{"url": r.URL.String()})
		r.Headers.Set("Accept", constants.AcceptHeader)
		r.Headers.Set("Accept-Language", constants.AcceptLanguageHeader)
	})

	collector.OnHTML("html", func(e *colly.HTMLElement) {
		records = extractListings(e.DOM, a.assetDomain, fetchLogger)
	})

	collector.OnError(func(r *colly.Response, err error) {
		fetchLogger.Error("Failed to fetch page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("immo fetcher: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := collector.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("immo fetcher: failed to visit %s: %w", pageURL, err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, responseErr
	}

	fetchLogger.Debug("Page fetched", port.Fields{
		"url":      pageURL,
		"listings": len(records),
	})
	return records, nil
}
