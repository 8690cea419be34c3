package usecase

import (
	"context"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/contextkeys"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/port"
)

// ComputeDeltaUseCase compares the current run against a previously persisted
// one and produces the merged, annotated output collection. It is a pure
// function of its two inputs: neither collection is mutated, and running it
// twice over the same pair yields identical output.
type ComputeDeltaUseCase struct{}

func NewComputeDeltaUseCase() *ComputeDeltaUseCase {
	return &ComputeDeltaUseCase{}
}

// Execute annotates current records ("new" when the identity key is unseen in
// the previous run, unset otherwise) and appends a "delisted" clone for every
// previous record whose key vanished. Output size is always
// len(current) + number of delisted keys.
func (uc *ComputeDeltaUseCase) Execute(ctx context.Context, previous, current []domain.ListingRecord) []domain.ListingRecord {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ComputeDelta"})

	// Key maps are last-write-wins on duplicate keys within one collection;
	// key order follows first occurrence. Duplicates are a known edge case
	// of the derived identity, not deduplicated here.
	prevOrder, prevByKey := indexByKey(previous)
	_, currByKey := indexByKey(current)

	newCount := 0
	annotated := make([]domain.ListingRecord, 0, len(current))
	for i := range current {
		record := current[i].Clone()
		if _, existed := prevByKey[record.IdentityKey()]; existed {
			// Seen in both runs: unchanged, carries no status marker.
			record.MonitoringStatus = domain.StatusUnset
		} else {
			record.MonitoringStatus = domain.StatusNew
			newCount++
		}
		annotated = append(annotated, record)
	}

	delistedCount := 0
	for _, key := range prevOrder {
		if _, stillListed := currByKey[key]; stillListed {
			continue
		}
		// Clone the previous run's record before annotating so the loaded
		// collection is never mutated as a side effect.
		prevRecord := prevByKey[key]
		clone := prevRecord.Clone()
		clone.MonitoringStatus = domain.StatusDelisted
		annotated = append(annotated, clone)
		delistedCount++
	}

	ucLogger.Info("Delta computation completed", port.Fields{
		"current":  len(current),
		"new":      newCount,
		"delisted": delistedCount,
		"combined": len(annotated),
	})

	return annotated
}

func indexByKey(items []domain.ListingRecord) ([]string, map[string]domain.ListingRecord) {
	order := make([]string, 0, len(items))
	byKey := make(map[string]domain.ListingRecord, len(items))
	for i := range items {
		key := items[i].IdentityKey()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = items[i]
	}
	return order, byKey
}
