package patch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"git.home.luguber.info/inful/sitesync/internal/config"
	"git.home.luguber.info/inful/sitesync/internal/errors"
	"git.home.luguber.info/inful/sitesync/internal/projection"
)

// Managed region names.
const (
	RegionStructuredData = "structured-data"
	RegionAddressBar     = "address-bar"
	RegionNavBrand       = "nav-brand"
	RegionBrandHeader    = "brand-header"
	RegionHoursTable     = "hours-table"
	RegionContactPhone   = "contact-phone"
	RegionContactAddress = "contact-address"
)

// Variant selects the page-specific behavior of the patcher.
type Variant string

const (
	VariantHome     Variant = "home"
	VariantContact  Variant = "contact"
	VariantSpecials Variant = "specials"
	VariantServices Variant = "services"
)

// Page describes one managed document.
type Page struct {
	File    string
	Variant Variant

	// Optional structured-data overrides for this page.
	Image       string
	Description string
}

// Result reports what Apply did to one document.
type Result struct {
	Changed bool
	Regions int // anchors matched in the document
}

// Apply substitutes every managed region present in doc. Regions absent from
// the document are skipped silently; that is how pages opt out of a
// projection.
func Apply(doc *Document, profile *config.BusinessProfile, today time.Time, page Page) (Result, error) {
	res := Result{}

	interiors, err := regionInteriors(profile, today, page)
	if err != nil {
		return res, err
	}

	for _, region := range doc.Regions() {
		interior, managed := interiors[region]
		if !managed {
			continue
		}
		res.Regions++
		doc.SetRegion(region, interior)
	}

	res.Changed = doc.Dirty()
	return res, nil
}

// File reads, patches, and conditionally rewrites one document. The new
// content is fully computed in memory and written atomically, so a failed
// write leaves the original file intact.
func File(path string, profile *config.BusinessProfile, today time.Time, page Page) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.NewFileSystemError("failed to read page", err).WithContext("page", path)
	}

	doc, err := ParseDocument(string(content))
	if err != nil {
		if se, ok := err.(*errors.SiteSyncError); ok {
			return Result{}, se.WithContext("page", path)
		}
		return Result{}, err
	}

	res, err := Apply(doc, profile, today, page)
	if err != nil {
		return Result{}, err
	}
	if !res.Changed {
		return res, nil
	}

	if err := atomic.WriteFile(path, strings.NewReader(doc.Render())); err != nil {
		return Result{}, errors.NewFileSystemError("failed to write page", err).WithContext("page", path)
	}
	return res, nil
}

// regionInteriors computes the new interior for every region this page
// manages.
func regionInteriors(profile *config.BusinessProfile, today time.Time, page Page) (map[string]string, error) {
	interiors := map[string]string{
		RegionAddressBar:     "\n" + projection.AddressBarText(profile) + "\n",
		RegionNavBrand:       "\n" + profile.ShortDisplayName() + "\n",
		RegionBrandHeader:    "\n" + profile.Name + "\n",
		RegionContactPhone:   "\n" + projection.ContactPhoneHTML(profile) + "\n",
		RegionContactAddress: "\n" + projection.ContactAddressHTML(profile) + "\n",
	}

	structured, err := structuredDataBlock(profile, today, page)
	if err != nil {
		return nil, err
	}
	interiors[RegionStructuredData] = structured

	// The hours table only lives on the contact page; other pages leave the
	// anchor alone even if present.
	if page.Variant == VariantContact {
		table, err := hoursTableBlock(profile, today)
		if err != nil {
			return nil, err
		}
		interiors[RegionHoursTable] = table
	}

	return interiors, nil
}

func structuredDataBlock(profile *config.BusinessProfile, today time.Time, page Page) (string, error) {
	sd, err := projection.BuildStructuredData(profile, today, projection.Overrides{
		Image:          page.Image,
		Description:    page.Description,
		IncludeCuisine: page.Variant == VariantHome,
	})
	if err != nil {
		return "", err
	}
	body, err := sd.RenderJSON()
	if err != nil {
		return "", err
	}
	return "\n<script type=\"application/ld+json\">\n" + body + "\n</script>\n", nil
}

func hoursTableBlock(profile *config.BusinessProfile, today time.Time) (string, error) {
	banner, err := projection.ClosureBannerHTML(profile, today)
	if err != nil {
		return "", err
	}

	closed := projection.ActiveTemporaryClosure(profile, today) != nil

	var b strings.Builder
	b.WriteString("\n")
	if banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	if closed {
		b.WriteString(`<table class="hours-table hours-table--closed">` + "\n")
		b.WriteString("<caption>Regular hours (temporarily closed)</caption>\n")
	} else {
		b.WriteString(`<table class="hours-table">` + "\n")
	}
	b.WriteString("<tbody>\n")
	b.WriteString(projection.HoursTableRows(profile))
	b.WriteString("\n</tbody>\n</table>\n")
	return b.String(), nil
}

// Preview computes the patched content without touching the filesystem.
// It returns the rendered document and whether it differs from the input.
func Preview(content string, profile *config.BusinessProfile, today time.Time, page Page) (string, bool, error) {
	doc, err := ParseDocument(content)
	if err != nil {
		return "", false, err
	}
	res, err := Apply(doc, profile, today, page)
	if err != nil {
		return "", false, err
	}
	return doc.Render(), res.Changed, nil
}

// String implements fmt.Stringer for log lines.
func (r Result) String() string {
	if !r.Changed {
		return fmt.Sprintf("no change (%d regions)", r.Regions)
	}
	return fmt.Sprintf("changed (%d regions)", r.Regions)
}
