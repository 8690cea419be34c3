package port

import (
	"context"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

// ExporterPort writes the final annotated run collection to a flat file.
// Supported formats: "json", "csv", "html".
type ExporterPort interface {
	Export(ctx context.Context, items []domain.ListingRecord, path string, format string) error
}
