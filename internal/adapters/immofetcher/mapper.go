package immofetcher

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// extractListings maps every located container to one ListingRecord. A
// malformed card produces an empty record, never a failure: sparse output
// represents a page the locator misidentified, and downstream stages can
// still work with whatever was recovered.
func extractListings(root *goquery.Selection, assetDomain string, logger port.LoggerPort) []domain.ListingRecord {
	containers, strategy := listingContainers(root, logger)

	records := make([]domain.ListingRecord, 0, containers.Length())
	containers.Each(func(_ int, card *goquery.Selection) {
		records = append(records, mapCardToRecord(card, assetDomain))
	})

	logger.Debug("Extracted listings from page", port.Fields{
		"listings": len(records),
		"strategy": strategy,
	})
	return records
}

// mapCardToRecord assembles one record from one container. Every field
// defaults to empty/absent on its own failure, independently of the others.
func mapCardToRecord(card *goquery.Selection, assetDomain string) domain.ListingRecord {
	record := domain.ListingRecord{
		Title:       firstText(card, titleSelectors),
		Description: firstText(card, descriptionSelectors),
		Location:    firstText(card, locationSelectors),
		Price:       firstText(card, priceSelectors),
		Photos:      extractPhotos(card, assetDomain),
		// Default status; the delta pass overrides it when a previous
		// run is available.
		MonitoringStatus: domain.StatusNew,
	}
	record.PriceValue = ParsePrice(record.Price)

	if surface := findTextMatch(card, surfaceRe); surface != "" {
		record.Surface = &surface
		record.SurfaceValueM2 = ParseFloat(surface)
	}
	if rooms := findTextMatch(card, roomsRe); rooms != "" {
		record.Rooms = ParseInt(rooms)
	}
	if bathrooms := findTextMatch(card, bathroomsRe); bathrooms != "" {
		record.Bathrooms = ParseInt(bathrooms)
	}
	if energy := findTextMatch(card, energyRe); energy != "" {
		record.EnergyClass = &energy
	}
	if year := findTextMatch(card, yearRe); year != "" {
		record.ConstructionYear = ParseInt(year)
	}
	if agency := firstText(card, agencySelectors); agency != "" {
		record.AgencyName = &agency
	}
	if contact := findTextMatch(card, contactRe); contact != "" {
		record.ContactInfo = &contact
	}
	if transport := findTextMatch(card, transportRe); transport != "" {
		record.Transport = &transport
	}

	return record
}

// firstText evaluates a selector chain and returns the normalized text of
// the first matching element, or "" when none match.
func firstText(card *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		el := card.Find(selector).First()
		if el.Length() > 0 {
			return CleanText(el.Text())
		}
	}
	return ""
}

// findTextMatch walks the card's text nodes in document order and returns
// the normalized content of the first one matching the pattern.
func findTextMatch(card *goquery.Selection, re *regexp.Regexp) string {
	for _, node := range card.Nodes {
		if found := findTextNode(node, re); found != "" {
			return found
		}
	}
	return ""
}

func findTextNode(node *html.Node, re *regexp.Regexp) string {
	if node.Type == html.TextNode {
		if re.MatchString(node.Data) {
			return CleanText(node.Data)
		}
		return ""
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findTextNode(child, re); found != "" {
			return found
		}
	}
	return ""
}

// extractPhotos collects image sources belonging to the site's asset domain,
// preferring the lazy-load attribute, deduplicated in first-seen order.
func extractPhotos(card *goquery.Selection, assetDomain string) []string {
	seen := make(map[string]struct{})
	photos := []string{}

	card.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr(photoLazyAttr, "")
		if src == "" {
			src = img.AttrOr(photoEagerAttr, "")
		}
		if src == "" || !strings.Contains(src, assetDomain) {
			return
		}
		if _, dup := seen[src]; dup {
			return
		}
		seen[src] = struct{}{}
		photos = append(photos, src)
	})

	return photos
}
