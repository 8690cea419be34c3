package usecase

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/constants"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// ScrapeSearchUseCase walks the result pages of one search URL and folds the
// per-page extractions into a single run collection. Page failures are
// isolated: a failed page contributes zero records and never aborts its
// siblings.
type ScrapeSearchUseCase struct {
	fetcher           port.ListingFetcherPort
	parallelRequests  int
	delayBetweenPages time.Duration
}

func NewScrapeSearchUseCase(fetcher port.ListingFetcherPort, parallelRequests int, delayBetweenPages time.Duration) *ScrapeSearchUseCase {
	return &ScrapeSearchUseCase{
		fetcher:           fetcher,
		parallelRequests:  parallelRequests,
		delayBetweenPages: delayBetweenPages,
	}
}

// Execute scrapes every page of the task. With concurrency enabled the
// aggregation order is completion order, not page order; callers that need
// page order must run with parallelRequests <= 1.
func (uc *ScrapeSearchUseCase) Execute(ctx context.Context, task domain.SearchTask) []domain.ListingRecord {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{
		"use_case": "ScrapeSearch",
		"url":      task.URL,
	})

	maxPages := task.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	pageURLs := make([]string, 0, maxPages)
	for page := 1; page <= maxPages; page++ {
		pageURLs = append(pageURLs, BuildPageURL(task.URL, page))
	}

	var listings []domain.ListingRecord

	if uc.parallelRequests <= 1 || len(pageURLs) == 1 {
		for i, pageURL := range pageURLs {
			listings = append(listings, uc.fetchAndExtract(ctx, ucLogger, pageURL, i+1)...)
		}
	} else {
		// Fan out one task per page, bounded by a semaphore, and fold
		// everything through a single buffered channel so the collection
		// is only ever appended to by this goroutine.
		resultsChan := make(chan []domain.ListingRecord, len(pageURLs))
		semaphore := make(chan struct{}, uc.parallelRequests)
		var wg sync.WaitGroup

		for i, pageURL := range pageURLs {
			wg.Add(1)
			go func(idx int, target string) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				resultsChan <- uc.fetchAndExtract(ctx, ucLogger, target, idx)
			}(i+1, pageURL)
		}

		wg.Wait()
		close(resultsChan)

		for pageListings := range resultsChan {
			listings = append(listings, pageListings...)
		}
	}

	ucLogger.Info("Search URL scraped", port.Fields{"total_listings": len(listings)})
	return listings
}

// fetchAndExtract handles one page. The stagger delay grows with the page
// index to spread request bursts across the pool.
func (uc *ScrapeSearchUseCase) fetchAndExtract(ctx context.Context, logger port.LoggerPort, pageURL string, pageIndex int) []domain.ListingRecord {
	pageLogger := logger.WithFields(port.Fields{"page": pageIndex})
	pageCtx := contextkeys.ContextWithLogger(ctx, pageLogger)

	if uc.delayBetweenPages > 0 {
		time.Sleep(uc.delayBetweenPages * time.Duration(pageIndex))
	}

	records, err := uc.fetcher.FetchListings(pageCtx, pageURL)
	if err != nil {
		pageLogger.Error("Failed to fetch or parse page", err, port.Fields{"page_url": pageURL})
		return nil
	}

	pageLogger.Info("Page processed", port.Fields{"listings_found": len(records)})
	return records
}

// BuildPageURL sets the pagination query parameter on the search URL.
// Page 1 reuses the base URL unchanged.
func BuildPageURL(baseURL string, page int) string {
	if page <= 1 {
		return baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	query := parsed.Query()
	query.Set(constants.PaginationParam, strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
