package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/sitesync/internal/config"
	"git.home.luguber.info/inful/sitesync/internal/patch"
)

// CheckSummary reports the dry-run staleness of the managed pages.
type CheckSummary struct {
	Stale   []string
	Fresh   int
	Skipped int
}

// Check computes what Sync would change without writing anything. Each
// patched result is additionally run through the HTML parser to confirm the
// splice leaves parseable markup.
func Check(profile *config.BusinessProfile, root string, now time.Time, out io.Writer) (CheckSummary, error) {
	summary := CheckSummary{}

	for _, page := range Pages() {
		path := filepath.Join(root, page.File)

		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			summary.Skipped++
			fmt.Fprintf(out, "  warning: %s not found, skipping\n", path)
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("failed to read %s: %w", path, err)
		}

		patched, changed, err := patch.Preview(string(content), profile, now, page)
		if err != nil {
			return summary, fmt.Errorf("failed to patch %s: %w", path, err)
		}

		if err := verifyParseable(patched); err != nil {
			return summary, fmt.Errorf("patched %s is not parseable HTML: %w", path, err)
		}

		if changed {
			summary.Stale = append(summary.Stale, path)
			fmt.Fprintf(out, "  stale: %s\n", path)
		} else {
			summary.Fresh++
			fmt.Fprintf(out, "  up to date: %s\n", path)
		}
	}

	if len(summary.Stale) > 0 {
		fmt.Fprintf(out, "%d pages are stale; run \"sitesync sync\" to update them\n", len(summary.Stale))
	} else {
		fmt.Fprintln(out, "All pages are up to date")
	}
	return summary, nil
}

// verifyParseable parses the document and checks that the managed sentinels
// survived as balanced pairs.
func verifyParseable(content string) error {
	if _, err := html.Parse(strings.NewReader(content)); err != nil {
		return err
	}

	opens := strings.Count(content, "<!-- AUTO-UPDATE:")
	closes := strings.Count(content, "<!-- END AUTO-UPDATE -->")
	if opens != closes {
		return fmt.Errorf("unbalanced sentinels: %d opening, %d closing", opens, closes)
	}
	return nil
}
