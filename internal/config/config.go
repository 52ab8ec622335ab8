package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BusinessProfile represents the business facts synced into the site pages.
// It is loaded once per run and never mutated afterwards.
type BusinessProfile struct {
	Name          string `yaml:"name"`
	ShortName     string `yaml:"short_name,omitempty"`
	URL           string `yaml:"url"`
	Tagline       string `yaml:"tagline,omitempty"`
	Description   string `yaml:"description,omitempty"`
	PriceRange    string `yaml:"price_range,omitempty"`
	ServesCuisine string `yaml:"serves_cuisine,omitempty"`

	Address     Address       `yaml:"address"`
	Phone       Phone         `yaml:"phone"`
	Coordinates Coordinates   `yaml:"coordinates"`
	Hours       []DaySchedule `yaml:"hours"`
	Images      Images        `yaml:"images"`

	// TemporaryClosure suspends regular hours while today falls inside its
	// inclusive date window.
	TemporaryClosure *TemporaryClosure `yaml:"temporary_closure,omitempty"`
}

// Address is the business street address
type Address struct {
	Street      string `yaml:"street"`
	City        string `yaml:"city"`
	Region      string `yaml:"region"`
	RegionCode  string `yaml:"region_code"`
	PostalCode  string `yaml:"postal_code"`
	Country     string `yaml:"country"`
	CountryCode string `yaml:"country_code"`
}

// Phone carries two representations of one phone number.
// Display is human-formatted; Tel is the E.164-like dial string.
type Phone struct {
	Display string `yaml:"display"`
	Tel     string `yaml:"tel"`
}

// Coordinates is the business location in floating-point degrees
type Coordinates struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// DaySchedule is one day's opening hours. Closed days carry no open/close
// times; open days carry both as "HH:MM" 24-hour strings.
type DaySchedule struct {
	Day    string `yaml:"day"`
	Open   string `yaml:"open,omitempty"`
	Close  string `yaml:"close,omitempty"`
	Closed bool   `yaml:"closed,omitempty"`
}

// Images holds page image defaults
type Images struct {
	DefaultImage string `yaml:"default_image"`
}

// TemporaryClosure is an inclusive date range during which regular hours are
// suspended, plus an optional banner message (inline Markdown).
type TemporaryClosure struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Message   string `yaml:"message,omitempty"`
}

// ShortDisplayName returns the short brand label, falling back to Name.
func (p *BusinessProfile) ShortDisplayName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.Name
}

// Load loads the business profile from the specified file
func Load(configPath string) (*BusinessProfile, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just note it in verbose runs
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var profile BusinessProfile
	if err := yaml.Unmarshal([]byte(expandedData), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
