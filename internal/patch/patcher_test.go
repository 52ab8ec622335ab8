package patch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitesync/internal/config"
)

func patchProfile() *config.BusinessProfile {
	return &config.BusinessProfile{
		Name:          "Copper Kettle Cafe",
		ShortName:     "Copper Kettle",
		URL:           "https://www.copperkettlecafe.example",
		Description:   "A neighborhood cafe.",
		PriceRange:    "$$",
		ServesCuisine: "Cafe",
		Address: config.Address{
			Street:      "412 Harbor Lane",
			City:        "Port Ellison",
			Region:      "Washington",
			RegionCode:  "WA",
			PostalCode:  "98339",
			Country:     "United States",
			CountryCode: "US",
		},
		Phone:       config.Phone{Display: "(360) 555-0142", Tel: "+13605550142"},
		Coordinates: config.Coordinates{Latitude: 47.8554, Longitude: -122.5803},
		Hours: []config.DaySchedule{
			{Day: "Monday", Closed: true},
			{Day: "Tuesday", Open: "09:30", Close: "17:00"},
			{Day: "Wednesday", Open: "09:30", Close: "17:00"},
			{Day: "Thursday", Open: "09:30", Close: "17:00"},
			{Day: "Friday", Open: "09:30", Close: "17:00"},
			{Day: "Saturday", Open: "09:00", Close: "17:00"},
			{Day: "Sunday", Closed: true},
		},
		Images: config.Images{DefaultImage: "img/storefront.jpg"},
	}
}

var patchDay = time.Date(2026, 8, 3, 10, 0, 0, 0, time.Local)

const homeFixture = `<!DOCTYPE html>
<html>
<head>
<!-- AUTO-UPDATE: structured-data -->
<!-- END AUTO-UPDATE -->
</head>
<body>
<nav><!-- AUTO-UPDATE: nav-brand -->stale<!-- END AUTO-UPDATE --></nav>
<h1><!-- AUTO-UPDATE: brand-header -->stale<!-- END AUTO-UPDATE --></h1>
<div class="address-bar"><!-- AUTO-UPDATE: address-bar -->stale<!-- END AUTO-UPDATE --></div>
</body>
</html>`

const contactFixture = `<!DOCTYPE html>
<html>
<head>
<!-- AUTO-UPDATE: structured-data -->
<!-- END AUTO-UPDATE -->
</head>
<body>
<section>
<!-- AUTO-UPDATE: hours-table -->
stale
<!-- END AUTO-UPDATE -->
</section>
<p><!-- AUTO-UPDATE: contact-phone -->stale<!-- END AUTO-UPDATE --></p>
<p><!-- AUTO-UPDATE: contact-address -->stale<!-- END AUTO-UPDATE --></p>
</body>
</html>`

func TestPreview_HomePage(t *testing.T) {
	out, changed, err := Preview(homeFixture, patchProfile(), patchDay, Page{Variant: VariantHome})
	require.NoError(t, err)
	require.True(t, changed)

	require.Contains(t, out, `"@type": "LocalBusiness"`)
	require.Contains(t, out, `"servesCuisine": "Cafe"`)
	require.Contains(t, out, "<nav><!-- AUTO-UPDATE: nav-brand -->\nCopper Kettle\n<!-- END AUTO-UPDATE --></nav>")
	require.Contains(t, out, "\nCopper Kettle Cafe\n")
	require.Contains(t, out, "412 Harbor Lane | Port Ellison, WA 98339 | (360) 555-0142")
}

func TestPreview_NonHomePageOmitsCuisine(t *testing.T) {
	out, changed, err := Preview(homeFixture, patchProfile(), patchDay, Page{Variant: VariantServices})
	require.NoError(t, err)
	require.True(t, changed)
	require.NotContains(t, out, "servesCuisine")
}

func TestPreview_ContactPage(t *testing.T) {
	out, changed, err := Preview(contactFixture, patchProfile(), patchDay, Page{Variant: VariantContact})
	require.NoError(t, err)
	require.True(t, changed)

	require.Contains(t, out, `<table class="hours-table">`)
	require.NotContains(t, out, "hours-table--closed")
	require.NotContains(t, out, "closure-banner")
	require.Contains(t, out, `<tr><th scope="row">Monday</th><td>Closed</td></tr>`)
	require.Contains(t, out, `<a href="tel:+13605550142">(360) 555-0142</a>`)
	require.Contains(t, out, "412 Harbor Lane<br>")
}

func TestPreview_ContactPageDuringClosure(t *testing.T) {
	p := patchProfile()
	p.TemporaryClosure = &config.TemporaryClosure{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-10",
		Message:   "Back soon!",
	}

	out, changed, err := Preview(contactFixture, p, patchDay, Page{Variant: VariantContact})
	require.NoError(t, err)
	require.True(t, changed)

	require.Contains(t, out, `class="closure-banner"`)
	require.Contains(t, out, "Back soon!")
	require.Contains(t, out, `<table class="hours-table hours-table--closed">`)
	require.Contains(t, out, "<caption>Regular hours (temporarily closed)</caption>")
	// Structured data drops the opening-hours rules while closed.
	require.NotContains(t, out, "openingHoursSpecification")
}

func TestPreview_HoursTableLeftAloneOffContactPage(t *testing.T) {
	content := "<!-- AUTO-UPDATE: hours-table -->\nstale\n<!-- END AUTO-UPDATE -->"
	out, changed, err := Preview(content, patchProfile(), patchDay, Page{Variant: VariantHome})
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, content, out)
}

func TestPreview_Idempotent(t *testing.T) {
	for _, page := range []Page{
		{Variant: VariantHome},
		{Variant: VariantContact},
	} {
		first, changed, err := Preview(contactFixture, patchProfile(), patchDay, page)
		require.NoError(t, err)
		require.True(t, changed)

		second, changed, err := Preview(first, patchProfile(), patchDay, page)
		require.NoError(t, err)
		require.False(t, changed, "second run must be a no-op")
		require.Equal(t, first, second)
	}
}

func TestFile_WritesOnlyWhenChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(homeFixture), 0o644))

	res, err := File(path, patchProfile(), patchDay, Page{File: "index.html", Variant: VariantHome})
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, 4, res.Regions)

	firstPass, err := os.ReadFile(path)
	require.NoError(t, err)

	res, err = File(path, patchProfile(), patchDay, Page{File: "index.html", Variant: VariantHome})
	require.NoError(t, err)
	require.False(t, res.Changed)

	secondPass, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(firstPass), string(secondPass))
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.html"), patchProfile(), patchDay, Page{Variant: VariantHome})
	require.Error(t, err)
}
