package immofetcher

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestListingContainersPrefersTestMarker(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<article data-testid="listing-card">one</article>
		<article data-testid="listing-card">two</article>
		<div class="nd-list__item">decoy</div>
		<article>generic</article>
	</body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "listing-card-testid", strategy)
	assert.Equal(t, 2, containers.Length())
}

func TestListingContainersFallsBackToListItemClass(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="nd-list__item nd-list__item--featured">one</div>
		<div class="nd-list__item">two</div>
		<div class="other">noise</div>
	</body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "nd-list-item-div", strategy)
	assert.Equal(t, 2, containers.Length())
}

func TestListingContainersListItemElements(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul>
		<li class="nd-list__item">one</li>
		<li class="nd-list__item">two</li>
		<li class="pagination">noise</li>
	</ul></body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "nd-list-item-li", strategy)
	assert.Equal(t, 2, containers.Length())
}

func TestListingContainersMicrodataOffer(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div itemscope itemtype="https://schema.org/Offer">one</div>
	</body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "schema-org-offer", strategy)
	assert.Equal(t, 1, containers.Length())
}

// A document matching only the fallback pattern must still yield containers.
func TestListingContainersArticleFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<article>one</article>
		<article>two</article>
		<article>three</article>
	</body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "article-fallback", strategy)
	assert.Equal(t, 3, containers.Length())
}

func TestListingContainersNothingMatches(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>maintenance page</p></body></html>`)

	containers, strategy := listingContainers(doc.Selection, contextkeys.LoggerFromContext(context.Background()))
	assert.Equal(t, "article-fallback", strategy)
	assert.Equal(t, 0, containers.Length())
}
