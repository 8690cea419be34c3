package immofetcher

import "regexp"

// CSS selectors for Immobiliare.it search-result markup. Centralising them
// makes updates after a site redesign trivial.

// containerStrategy is one way of locating the listing cards on a page.
// Strategies are tried in order; the first one yielding at least one node
// wins. Ordering is most-specific first so that markup drift degrades to
// broader matches instead of silently returning nothing.
type containerStrategy struct {
	name     string
	selector string
}

var containerStrategies = []containerStrategy{
	{"listing-card-testid", `article[data-testid="listing-card"]`},
	{"nd-list-item-div", `div[class^="nd-list__item"], div[class*=" nd-list__item"]`},
	{"nd-list-item-li", `li[class^="nd-list__item"], li[class*=" nd-list__item"]`},
	{"schema-org-offer", `div[itemtype*="schema.org/Offer"]`},
}

// fallbackContainerSelector catches any article-shaped element when every
// strategy above misses. May yield false positives; never fails.
const fallbackContainerSelector = "article"

// Per-field selector chains, first match wins.
var (
	titleSelectors = []string{
		`a[data-testid="listing-title"]`,
		`a[class*="title"]`,
		`h2`,
	}
	descriptionSelectors = []string{
		`p[data-testid="listing-description"]`,
		`p[class*="description"]`,
	}
	locationSelectors = []string{
		`span[data-testid="listing-location"]`,
		`span[class*="location"]`,
	}
	priceSelectors = []string{
		`span[data-testid="listing-price"]`,
		`li[class*="price"]`,
	}
	agencySelectors = []string{
		`span[data-testid="listing-agency-name"]`,
		`div[class*="agency"]`,
	}
)

// Patterns for fields that have no stable DOM location. The first text node
// matching a pattern, in document order, is used.
var (
	surfaceRe   = regexp.MustCompile(`m²`)
	roomsRe     = regexp.MustCompile(`(?i)\b(?:locali|stanze|rooms)\b`)
	bathroomsRe = regexp.MustCompile(`(?i)\b(?:bagni|bathrooms?)\b`)
	energyRe    = regexp.MustCompile(`(?i)classe`)
	yearRe      = regexp.MustCompile(`(?i)anno di costruzione|costruito nel`)
	contactRe   = regexp.MustCompile(`\+?\d{6,}`)
	transportRe = regexp.MustCompile(`(?i)metro|bus|tram|fermata`)
)

// Photo source attributes; the lazy-load attribute takes priority.
const (
	photoLazyAttr  = "data-src"
	photoEagerAttr = "src"
)
