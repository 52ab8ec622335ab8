package projection

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"git.home.luguber.info/inful/sitesync/internal/config"
)

// StructuredData is the schema.org LocalBusiness record embedded in each
// page. Field order is the serialization order, which keeps output
// byte-for-byte stable across runs.
type StructuredData struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	Name          string         `json:"name"`
	Image         string         `json:"image"`
	Address       PostalAddress  `json:"address"`
	Geo           GeoCoordinates `json:"geo"`
	URL           string         `json:"url"`
	Telephone     string         `json:"telephone"`
	PriceRange    string         `json:"priceRange,omitempty"`
	ServesCuisine string         `json:"servesCuisine,omitempty"`

	// Nil means the rules are suppressed (active temporary closure).
	// A pointer to an empty slice renders as [] (every day closed).
	OpeningHours *[]OpeningHoursRule `json:"openingHoursSpecification,omitempty"`

	Description string `json:"description,omitempty"`
}

// PostalAddress is the schema.org address sub-record
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// GeoCoordinates is the schema.org geo sub-record
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OpeningHoursRule is one grouped opening-hours entry: the days sharing an
// identical (opens, closes) pair.
type OpeningHoursRule struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// Overrides carries per-page variations of the structured data.
type Overrides struct {
	Image          string // relative path; empty falls back to images.default_image
	Description    string // empty falls back to the profile description
	IncludeCuisine bool   // the cuisine tag is only emitted on the home page
}

// BuildStructuredData composes the LocalBusiness record for one page.
//
// Opening-hours rules group the week's schedules by identical (open, close)
// pair among non-closed days, preserving first-seen order of distinct pairs.
// While a temporary closure is active the rules are omitted entirely, since
// the regular hours are not representative.
func BuildStructuredData(profile *config.BusinessProfile, today time.Time, overrides Overrides) (*StructuredData, error) {
	imagePath := overrides.Image
	if imagePath == "" {
		imagePath = profile.Images.DefaultImage
	}
	imageURL, err := url.JoinPath(profile.URL, imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to build image URL: %w", err)
	}

	description := overrides.Description
	if description == "" {
		description = profile.Description
	}

	cuisine := ""
	if overrides.IncludeCuisine {
		cuisine = profile.ServesCuisine
	}

	sd := &StructuredData{
		Context: "https://schema.org",
		Type:    "LocalBusiness",
		Name:    profile.Name,
		Image:   imageURL,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   profile.Address.Street,
			AddressLocality: profile.Address.City,
			AddressRegion:   profile.Address.RegionCode,
			PostalCode:      profile.Address.PostalCode,
			AddressCountry:  profile.Address.CountryCode,
		},
		Geo: GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  profile.Coordinates.Latitude,
			Longitude: profile.Coordinates.Longitude,
		},
		URL:           profile.URL,
		Telephone:     profile.Phone.Tel,
		PriceRange:    profile.PriceRange,
		ServesCuisine: cuisine,
		Description:   description,
	}

	if ActiveTemporaryClosure(profile, today) == nil {
		rules := groupOpeningHours(profile.Hours)
		sd.OpeningHours = &rules
	}

	return sd, nil
}

// RenderJSON serializes the record with two-space indentation. encoding/json
// preserves struct field order, so identical input yields identical bytes.
func (sd *StructuredData) RenderJSON() (string, error) {
	data, err := json.MarshalIndent(sd, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize structured data: %w", err)
	}
	return string(data), nil
}

// groupOpeningHours collapses the 7 day schedules into rules keyed by
// (open, close) pair, in first-seen order. A week with every day closed
// yields zero rules, which is valid.
func groupOpeningHours(hours []config.DaySchedule) []OpeningHoursRule {
	rules := make([]OpeningHoursRule, 0, len(hours))
	index := make(map[[2]string]int)

	for _, day := range hours {
		if day.Closed {
			continue
		}
		key := [2]string{day.Open, day.Close}
		if i, ok := index[key]; ok {
			rules[i].DayOfWeek = append(rules[i].DayOfWeek, day.Day)
			continue
		}
		index[key] = len(rules)
		rules = append(rules, OpeningHoursRule{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: []string{day.Day},
			Opens:     day.Open,
			Closes:    day.Close,
		})
	}
	return rules
}
