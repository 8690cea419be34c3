package immofetcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/constants"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

const fullCardHTML = `<html><body>
<article data-testid="listing-card">
	<a data-testid="listing-title" href="/annunci/1/">Trilocale in vendita, Via Roma 10</a>
	<span data-testid="listing-location">Milano, Centro</span>
	<span data-testid="listing-price">€ 230.000</span>
	<p data-testid="listing-description">Luminoso appartamento ristrutturato</p>
	<ul>
		<li>85 m²</li>
		<li>3 locali</li>
		<li>2 bagni</li>
		<li>Classe A</li>
		<li>Anno di costruzione 1995</li>
	</ul>
	<div class="agency-card">Agenzia Rossi</div>
	<p>Tel. 0212345678</p>
	<p>A 200 m dalla metro</p>
	<img data-src="https://images.immobiliare.it/a.jpg" src="https://images.immobiliare.it/placeholder.jpg">
	<img src="https://images.immobiliare.it/b.jpg">
	<img data-src="https://images.immobiliare.it/a.jpg">
	<img src="https://cdn.other.com/c.jpg">
</article>
</body></html>`

func TestMapCardToRecordFullCard(t *testing.T) {
	doc := parseDoc(t, fullCardHTML)
	card := doc.Find(`article[data-testid="listing-card"]`).First()
	require.Equal(t, 1, card.Length())

	record := mapCardToRecord(card, constants.AssetDomain)

	assert.Equal(t, "Trilocale in vendita, Via Roma 10", record.Title)
	assert.Equal(t, "Milano, Centro", record.Location)
	assert.Equal(t, "Luminoso appartamento ristrutturato", record.Description)
	assert.Equal(t, "€ 230.000", record.Price)
	require.NotNil(t, record.PriceValue)
	assert.Equal(t, 230000.0, *record.PriceValue)

	require.NotNil(t, record.Surface)
	assert.Equal(t, "85 m²", *record.Surface)
	require.NotNil(t, record.SurfaceValueM2)
	assert.Equal(t, 85.0, *record.SurfaceValueM2)

	require.NotNil(t, record.Rooms)
	assert.Equal(t, 3, *record.Rooms)
	require.NotNil(t, record.Bathrooms)
	assert.Equal(t, 2, *record.Bathrooms)

	require.NotNil(t, record.EnergyClass)
	assert.Equal(t, "Classe A", *record.EnergyClass)
	require.NotNil(t, record.ConstructionYear)
	assert.Equal(t, 1995, *record.ConstructionYear)

	require.NotNil(t, record.AgencyName)
	assert.Equal(t, "Agenzia Rossi", *record.AgencyName)
	require.NotNil(t, record.ContactInfo)
	assert.Equal(t, "Tel. 0212345678", *record.ContactInfo)
	require.NotNil(t, record.Transport)
	assert.Equal(t, "A 200 m dalla metro", *record.Transport)

	assert.Equal(t, domain.StatusNew, record.MonitoringStatus)
}

// Lazy-load sources win over eager ones, duplicates collapse in first-seen
// order, and foreign-host images are skipped.
func TestMapCardToRecordPhotos(t *testing.T) {
	doc := parseDoc(t, fullCardHTML)
	card := doc.Find(`article[data-testid="listing-card"]`).First()

	record := mapCardToRecord(card, constants.AssetDomain)

	assert.Equal(t, []string{
		"https://images.immobiliare.it/a.jpg",
		"https://images.immobiliare.it/b.jpg",
	}, record.Photos)
}

// A container with none of the expected markup still yields a record, just
// an empty one. Photos stay a non-nil empty slice so the record serializes
// as [] instead of null.
func TestMapCardToRecordMalformedCard(t *testing.T) {
	doc := parseDoc(t, `<html><body><article data-testid="listing-card"><b>?</b></article></body></html>`)
	card := doc.Find("article").First()

	record := mapCardToRecord(card, constants.AssetDomain)

	assert.Empty(t, record.Title)
	assert.Empty(t, record.Price)
	assert.Nil(t, record.PriceValue)
	assert.Nil(t, record.Rooms)
	assert.Nil(t, record.Surface)
	assert.NotNil(t, record.Photos)
	assert.Len(t, record.Photos, 0)
	assert.Equal(t, domain.StatusNew, record.MonitoringStatus)
}

func TestExtractListings(t *testing.T) {
	logger := contextkeys.LoggerFromContext(context.Background())

	doc := parseDoc(t, `<html><body>
		<article data-testid="listing-card"><a data-testid="listing-title" href="#">One</a></article>
		<article data-testid="listing-card"><a data-testid="listing-title" href="#">Two</a></article>
	</body></html>`)

	records := extractListings(doc.Selection, constants.AssetDomain, logger)
	require.Len(t, records, 2)
	assert.Equal(t, "One", records[0].Title)
	assert.Equal(t, "Two", records[1].Title)
}

func TestExtractListingsEmptyPage(t *testing.T) {
	logger := contextkeys.LoggerFromContext(context.Background())

	doc := parseDoc(t, `<html><body><p>nothing here</p></body></html>`)

	records := extractListings(doc.Selection, constants.AssetDomain, logger)
	assert.NotNil(t, records)
	assert.Len(t, records, 0)
}
