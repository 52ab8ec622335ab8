package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	syncerrors "git.home.luguber.info/inful/sitesync/internal/errors"
)

func validProfile() *BusinessProfile {
	return &BusinessProfile{
		Name: "Copper Kettle Cafe",
		URL:  "https://www.copperkettlecafe.example",
		Address: Address{
			Street:      "412 Harbor Lane",
			City:        "Port Ellison",
			Region:      "Washington",
			RegionCode:  "WA",
			PostalCode:  "98339",
			Country:     "United States",
			CountryCode: "US",
		},
		Phone: Phone{Display: "(360) 555-0142", Tel: "+13605550142"},
		Coordinates: Coordinates{Latitude: 47.8554, Longitude: -122.5803},
		Hours: []DaySchedule{
			{Day: "Monday", Closed: true},
			{Day: "Tuesday", Open: "09:30", Close: "17:00"},
			{Day: "Wednesday", Open: "09:30", Close: "17:00"},
			{Day: "Thursday", Open: "09:30", Close: "17:00"},
			{Day: "Friday", Open: "09:30", Close: "17:00"},
			{Day: "Saturday", Open: "09:00", Close: "17:00"},
			{Day: "Sunday", Closed: true},
		},
		Images: Images{DefaultImage: "img/storefront.jpg"},
	}
}

func TestValidate_ValidProfile(t *testing.T) {
	require.NoError(t, Validate(validProfile()))
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BusinessProfile)
	}{
		{"missing name", func(p *BusinessProfile) { p.Name = "" }},
		{"missing url", func(p *BusinessProfile) { p.URL = "" }},
		{"missing street", func(p *BusinessProfile) { p.Address.Street = "" }},
		{"missing postal code", func(p *BusinessProfile) { p.Address.PostalCode = "" }},
		{"missing phone display", func(p *BusinessProfile) { p.Phone.Display = "" }},
		{"missing phone tel", func(p *BusinessProfile) { p.Phone.Tel = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := validProfile()
			test.mutate(p)
			err := Validate(p)
			require.Error(t, err)
			require.True(t, syncerrors.IsCategory(err, syncerrors.CategoryValidation))
		})
	}
}

func TestValidate_PhoneRepresentationsMustAgree(t *testing.T) {
	p := validProfile()
	p.Phone.Tel = "+13605550199"
	err := Validate(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "different numbers")
}

func TestValidate_HoursInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BusinessProfile)
	}{
		{"too few days", func(p *BusinessProfile) { p.Hours = p.Hours[:6] }},
		{"wrong day order", func(p *BusinessProfile) {
			p.Hours[0], p.Hours[1] = p.Hours[1], p.Hours[0]
		}},
		{"closed day with open time", func(p *BusinessProfile) { p.Hours[0].Open = "09:00" }},
		{"open day missing close", func(p *BusinessProfile) { p.Hours[1].Close = "" }},
		{"open not before close", func(p *BusinessProfile) {
			p.Hours[1].Open = "17:00"
			p.Hours[1].Close = "09:30"
		}},
		{"malformed time", func(p *BusinessProfile) { p.Hours[1].Open = "9:30" }},
		{"out of range time", func(p *BusinessProfile) { p.Hours[1].Close = "24:00" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := validProfile()
			test.mutate(p)
			require.Error(t, Validate(p))
		})
	}
}

func TestValidate_ClosureDates(t *testing.T) {
	p := validProfile()
	p.TemporaryClosure = &TemporaryClosure{StartDate: "2026-09-01", EndDate: "2026-09-14"}
	require.NoError(t, Validate(p))

	p.TemporaryClosure = &TemporaryClosure{StartDate: "2026-09-14", EndDate: "2026-09-01"}
	require.Error(t, Validate(p))

	p.TemporaryClosure = &TemporaryClosure{StartDate: "Sep 1 2026", EndDate: "2026-09-14"}
	require.Error(t, Validate(p))
}
