// Package site orchestrates the sync run over the fixed set of managed
// pages.
package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitesync/internal/config"
	"git.home.luguber.info/inful/sitesync/internal/errors"
	"git.home.luguber.info/inful/sitesync/internal/patch"
)

// Pages returns the managed page set. The list is fixed; adding a page means
// adding an entry here and anchors in the page itself.
func Pages() []patch.Page {
	return []patch.Page{
		{File: "index.html", Variant: patch.VariantHome},
		{File: "contact.html", Variant: patch.VariantContact},
		{File: "specials.html", Variant: patch.VariantSpecials, Image: "img/specials.jpg"},
		{File: "services.html", Variant: patch.VariantServices},
	}
}

// Summary aggregates per-page outcomes of one run.
type Summary struct {
	Updated   int
	Unchanged int
	Skipped   int
	Failed    int
}

// Total returns the number of pages visited.
func (s Summary) Total() int {
	return s.Updated + s.Unchanged + s.Skipped + s.Failed
}

// Sync patches every managed page under root and reports per-page outcomes
// to out. Missing pages are warnings, malformed anchors fail only their own
// page, and a failed write aborts the run: everything downstream of it would
// report stale results anyway.
func Sync(profile *config.BusinessProfile, root string, now time.Time, out io.Writer) (Summary, error) {
	pages := Pages()
	summary := Summary{}

	fmt.Fprintf(out, "Syncing business data into %d pages\n", len(pages))

	for _, page := range pages {
		path := filepath.Join(root, page.File)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			summary.Skipped++
			slog.Warn("Page not found, skipping", "page", path)
			fmt.Fprintf(out, "  warning: %s not found, skipping\n", path)
			continue
		}

		res, err := patch.File(path, profile, now, page)
		if err != nil {
			if errors.IsCategory(err, errors.CategoryFileSystem) {
				return summary, err
			}
			summary.Failed++
			slog.Error("Failed to patch page", "page", path, "error", err)
			fmt.Fprintf(out, "  error: %s: %v\n", path, err)
			continue
		}

		if res.Changed {
			summary.Updated++
			slog.Info("Page updated", "page", path, "regions", res.Regions)
			fmt.Fprintf(out, "  updated %s (%d regions)\n", path, res.Regions)
		} else {
			summary.Unchanged++
			slog.Debug("Page already up to date", "page", path)
			fmt.Fprintf(out, "  no update needed for %s\n", path)
		}
	}

	fmt.Fprintf(out, "Updated %d of %d pages\n", summary.Updated, summary.Total())
	fmt.Fprintln(out, "Next: review the changes with git diff, then commit.")

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d pages failed", summary.Failed, summary.Total())
	}
	return summary, nil
}
