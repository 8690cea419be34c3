package urlsource

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// FileURLSource reads search URLs from a plain text file, one per line.
type FileURLSource struct{}

func NewFileURLSource() *FileURLSource {
	return &FileURLSource{}
}

// ReadURLs returns the non-blank, non-comment lines of the file. A missing
// file yields an empty list; the caller decides whether that is fatal.
func (s *FileURLSource) ReadURLs(ctx context.Context, path string) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "FileURLSource"})

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("URL input file not found", port.Fields{"path": path})
			return nil, nil
		}
		return nil, fmt.Errorf("url source: failed to open %s: %w", path, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("url source: failed to read %s: %w", path, err)
	}

	return urls, nil
}

// NormalizeURL ensures the URL carries a scheme. Inputs given without a
// protocol ("www.immobiliare.it/...") default to https.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		parsed, err = url.Parse("https://" + raw)
		if err != nil {
			return raw
		}
	}
	return parsed.String()
}
