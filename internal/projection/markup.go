package projection

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/sitesync/internal/config"
)

const defaultClosureMessage = "Temporarily closed"

// ClosureBannerHTML renders the temporary-closure alert, or an empty string
// when no closure is active for today.
//
// The configured message is treated as inline Markdown so the config can
// carry emphasis and links without hand-written HTML.
func ClosureBannerHTML(profile *config.BusinessProfile, today time.Time) (string, error) {
	closure := ActiveTemporaryClosure(profile, today)
	if closure == nil {
		return "", nil
	}

	message := closure.Message
	if message == "" {
		message = defaultClosureMessage
	}
	messageHTML, err := renderInlineMarkdown(message)
	if err != nil {
		return "", fmt.Errorf("failed to render closure message: %w", err)
	}

	start, err := FormatDate(closure.StartDate)
	if err != nil {
		return "", err
	}
	end, err := FormatDate(closure.EndDate)
	if err != nil {
		return "", err
	}
	reopenISO, err := NextDay(closure.EndDate)
	if err != nil {
		return "", err
	}
	reopen, err := FormatDateWithDay(reopenISO)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<div class="closure-banner" role="alert">` + "\n")
	b.WriteString("  <p class=\"closure-banner__message\">" + messageHTML + "</p>\n")
	b.WriteString("  <p class=\"closure-banner__dates\">Closed " + start + " &ndash; " + end + "</p>\n")
	b.WriteString("  <p class=\"closure-banner__reopen\">We reopen " + reopen + "</p>\n")
	b.WriteString("</div>")
	return b.String(), nil
}

// HoursTableRows renders one table row per day schedule, Monday-first.
// Closed days render a literal "Closed" in place of a time range.
func HoursTableRows(profile *config.BusinessProfile) string {
	var b strings.Builder
	for i, day := range profile.Hours {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(`<tr><th scope="row">`)
		b.WriteString(html.EscapeString(day.Day))
		b.WriteString("</th><td>")
		if day.Closed {
			b.WriteString("Closed")
		} else {
			b.WriteString(FormatTime12Hour(day.Open))
			b.WriteString(" &ndash; ")
			b.WriteString(FormatTime12Hour(day.Close))
		}
		b.WriteString("</td></tr>")
	}
	return b.String()
}

// AddressBarText renders the one-line address bar. Order and the " | "
// separator are an exact contract with the page layout.
func AddressBarText(profile *config.BusinessProfile) string {
	addr := profile.Address
	return strings.Join([]string{
		addr.Street,
		fmt.Sprintf("%s, %s %s", addr.City, addr.RegionCode, addr.PostalCode),
		profile.Phone.Display,
	}, " | ")
}

// ContactPhoneHTML renders the contact page's phone link.
func ContactPhoneHTML(profile *config.BusinessProfile) string {
	return fmt.Sprintf(`<a href="tel:%s">%s</a>`,
		html.EscapeString(profile.Phone.Tel), html.EscapeString(profile.Phone.Display))
}

// ContactAddressHTML renders the contact page's two-line address.
func ContactAddressHTML(profile *config.BusinessProfile) string {
	addr := profile.Address
	return fmt.Sprintf("%s<br>\n%s, %s %s",
		html.EscapeString(addr.Street),
		html.EscapeString(addr.City), html.EscapeString(addr.RegionCode), html.EscapeString(addr.PostalCode))
}

// renderInlineMarkdown converts one-line Markdown to HTML without the block
// wrapper. Goldmark always emits a paragraph around inline content, so the
// outer <p> tags are stripped.
func renderInlineMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out, nil
}
