package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// Manager writes the final run collection to a flat file in one of the
// supported formats.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Export serializes items to path. Failures never leave a partially valid
// dataset behind a successful return: an error means the export failed as a
// whole.
func (m *Manager) Export(ctx context.Context, items []domain.ListingRecord, path string, format string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "ExportManager"})

	format = strings.ToLower(format)
	logger.Info("Exporting run collection", port.Fields{
		"items":  len(items),
		"path":   path,
		"format": format,
	})

	if err := ensureDirectory(path); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return exportJSON(items, path)
	case FormatCSV:
		return exportCSV(items, path)
	case FormatHTML:
		return exportHTML(items, path)
	default:
		return fmt.Errorf("export: unsupported format: %s", format)
	}
}

// InferFormat derives the export format from the output file extension,
// defaulting to JSON.
func InferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".htm", ".html":
		return FormatHTML
	default:
		return FormatJSON
	}
}

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: failed to create output directory %s: %w", dir, err)
	}
	return nil
}
