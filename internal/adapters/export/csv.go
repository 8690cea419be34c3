package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Luminex99/immobiliare-it-listing-page-scraper-by-search-url/internal/core/domain"
)

// csvColumns lists every record field in stable (alphabetical) order so that
// files from different runs diff cleanly.
var csvColumns = []string{
	"agency_name",
	"bathrooms",
	"construction_year",
	"contact_info",
	"description",
	"energy_class",
	"location",
	"monitoring_status",
	"photos",
	"price",
	"price_value",
	"rooms",
	"surface",
	"surface_value_m2",
	"title",
}

func exportCSV(items []domain.ListingRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create %s: %w", path, err)
	}
	defer file.Close()

	// An empty dataset produces an empty file, not a lone header row.
	if len(items) == 0 {
		return nil
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("export: failed to write csv header: %w", err)
	}

	for i := range items {
		if err := writer.Write(csvRow(&items[i])); err != nil {
			return fmt.Errorf("export: failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export: failed to flush csv: %w", err)
	}
	return nil
}

func csvRow(r *domain.ListingRecord) []string {
	return []string{
		stringOrEmpty(r.AgencyName),
		intOrEmpty(r.Bathrooms),
		intOrEmpty(r.ConstructionYear),
		stringOrEmpty(r.ContactInfo),
		r.Description,
		stringOrEmpty(r.EnergyClass),
		r.Location,
		string(r.MonitoringStatus),
		strings.Join(r.Photos, " | "),
		r.Price,
		floatOrEmpty(r.PriceValue),
		intOrEmpty(r.Rooms),
		stringOrEmpty(r.Surface),
		floatOrEmpty(r.SurfaceValueM2),
		r.Title,
	}
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
