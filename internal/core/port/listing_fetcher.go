package port

import (
	"context"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

// ListingFetcherPort fetches one search-result page and returns the listing
// records extracted from it. A page with recognizable markup but no listings
// yields an empty slice and no error; transport and parse failures yield an
// error and no records.
type ListingFetcherPort interface {
	FetchListings(ctx context.Context, pageURL string) ([]domain.ListingRecord, error)
}
