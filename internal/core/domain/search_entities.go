package domain

// SearchTask describes one normalized search URL to scrape and how many
// result pages to walk for it.
type SearchTask struct {
	URL      string
	MaxPages int
}
