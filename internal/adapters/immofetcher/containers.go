package immofetcher

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// listingContainers locates the repeating elements representing one listing
// each. Returns the matched selection plus the name of the strategy that
// produced it. An empty selection is a legitimate result (page with no
// article-shaped elements at all), never an error.
func listingContainers(root *goquery.Selection, logger port.LoggerPort) (*goquery.Selection, string) {
	for _, strategy := range containerStrategies {
		containers := root.Find(strategy.selector)
		if containers.Length() > 0 {
			logger.Debug("Found listing containers", port.Fields{
				"strategy":   strategy.name,
				"containers": containers.Length(),
			})
			return containers, strategy.name
		}
	}

	fallback := root.Find(fallbackContainerSelector)
	logger.Debug("Using fallback listing containers", port.Fields{
		"strategy":   "article-fallback",
		"containers": fallback.Length(),
	})
	return fallback, "article-fallback"
}
