package constants

// Site-specific parameters for Immobiliare.it search-result pages.
const (
	// AssetDomain filters photo URLs to the site's own CDN.
	AssetDomain = "immobiliare.it"

	// PaginationParam is the query parameter carrying the result-page number
	// (?pag=2 or &pag=2 on standard search URLs).
	PaginationParam = "pag"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/123.0 Safari/537.36"

	AcceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	AcceptLanguageHeader = "it-IT,it;q=0.9,en-US;q=0.8,en;q=0.7"
)
