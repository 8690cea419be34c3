package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

func exportJSON(items []domain.ListingRecord, path string) error {
	if items == nil {
		items = []domain.ListingRecord{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("export: failed to marshal items: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: failed to write %s: %w", path, err)
	}
	return nil
}
