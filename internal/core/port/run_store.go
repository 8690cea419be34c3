package port

import (
	"context"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

// RunStorePort loads a previously persisted run collection. The returned
// slice is treated as read-only by every caller.
type RunStorePort interface {
	LoadRun(ctx context.Context, path string) ([]domain.ListingRecord, error)
}
