package domain

import "strings"

// MonitoringStatus marks how a listing relates to the previous scrape run.
// The zero value means the listing was seen in both runs (unchanged).
type MonitoringStatus string

const (
	StatusUnset    MonitoringStatus = ""
	StatusNew      MonitoringStatus = "new"
	StatusDelisted MonitoringStatus = "delisted"
)

// ListingRecord is one scraped search-result card. Optional fields are
// pointers so that "absent" survives a JSON round trip as null, matching
// the persisted run files.
type ListingRecord struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Price            string           `json:"price"`
	PriceValue       *float64         `json:"price_value"`
	Location         string           `json:"location"`
	Surface          *string          `json:"surface"`
	SurfaceValueM2   *float64         `json:"surface_value_m2"`
	Rooms            *int             `json:"rooms"`
	Bathrooms        *int             `json:"bathrooms"`
	Photos           []string         `json:"photos"`
	EnergyClass      *string          `json:"energy_class"`
	ConstructionYear *int             `json:"construction_year"`
	AgencyName       *string          `json:"agency_name"`
	ContactInfo      *string          `json:"contact_info"`
	Transport        *string          `json:"transport"`
	MonitoringStatus MonitoringStatus `json:"monitoring_status,omitempty"`
}

// IdentityKey derives the cross-run identity of a listing. The source pages
// carry no stable listing ID, so title+location+price text is the best
// approximation available: two records agreeing on all three are treated as
// the same listing even if other fields differ.
func (r *ListingRecord) IdentityKey() string {
	title := strings.ToLower(strings.TrimSpace(r.Title))
	location := strings.ToLower(strings.TrimSpace(r.Location))
	price := strings.ToLower(strings.TrimSpace(r.Price))
	return title + "|" + location + "|" + price
}

// Clone returns a deep copy. Delta annotation must not alias the slices and
// pointers of the run the record came from.
func (r *ListingRecord) Clone() ListingRecord {
	out := *r
	if r.Photos != nil {
		out.Photos = append([]string(nil), r.Photos...)
	}
	out.PriceValue = cloneFloat(r.PriceValue)
	out.SurfaceValueM2 = cloneFloat(r.SurfaceValueM2)
	out.Rooms = cloneInt(r.Rooms)
	out.Bathrooms = cloneInt(r.Bathrooms)
	out.ConstructionYear = cloneInt(r.ConstructionYear)
	out.Surface = cloneString(r.Surface)
	out.EnergyClass = cloneString(r.EnergyClass)
	out.AgencyName = cloneString(r.AgencyName)
	out.ContactInfo = cloneString(r.ContactInfo)
	out.Transport = cloneString(r.Transport)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
