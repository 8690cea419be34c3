package runstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// JSONRunStore loads run collections persisted as JSON arrays by the
// exporter of an earlier invocation.
type JSONRunStore struct{}

func NewJSONRunStore() *JSONRunStore {
	return &JSONRunStore{}
}

// LoadRun reads a previous run file. Any failure (missing file, payload that
// is not a JSON array of records) is returned to the caller, which decides
// whether to disable delta mode for the invocation.
func (s *JSONRunStore) LoadRun(ctx context.Context, path string) ([]domain.ListingRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "JSONRunStore"})

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("run store: failed to read %s: %w", path, err)
	}

	var items []domain.ListingRecord
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("run store: %s does not contain a run collection: %w", path, err)
	}

	logger.Info("Loaded previous run file", port.Fields{
		"path":  path,
		"items": len(items),
	})
	return items, nil
}
