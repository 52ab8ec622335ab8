package projection

import (
	"time"

	"git.home.luguber.info/inful/sitesync/internal/config"
)

// ActiveTemporaryClosure returns the profile's temporary closure record iff
// today (date-only) lies within its inclusive [start_date, end_date] window.
//
// This one predicate gates three downstream behaviors: suppression of the
// opening-hours structured data, the closure banner, and the dimmed and
// captioned hours table.
func ActiveTemporaryClosure(profile *config.BusinessProfile, today time.Time) *config.TemporaryClosure {
	closure := profile.TemporaryClosure
	if closure == nil {
		return nil
	}

	start, err := ParseLocalDate(closure.StartDate)
	if err != nil {
		return nil
	}
	end, err := ParseLocalDate(closure.EndDate)
	if err != nil {
		return nil
	}

	day := Today(today)
	if day.Before(start) || day.After(end) {
		return nil
	}
	return closure
}
