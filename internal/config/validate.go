package config

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitesync/internal/errors"
)

// weekdayOrder is the required Monday-first order of the hours list.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Validate validates the complete business profile. The profile feeds every
// projection downstream, so validation fails fast: there is no
// partial-profile mode.
func Validate(profile *BusinessProfile) error {
	validator := newProfileValidator(profile)
	return validator.validate()
}

// profileValidator coordinates validation across all profile domains.
type profileValidator struct {
	profile *BusinessProfile
}

func newProfileValidator(profile *BusinessProfile) *profileValidator {
	return &profileValidator{profile: profile}
}

func (pv *profileValidator) validate() error {
	if err := pv.validateIdentity(); err != nil {
		return err
	}
	if err := pv.validateAddress(); err != nil {
		return err
	}
	if err := pv.validatePhone(); err != nil {
		return err
	}
	if err := pv.validateHours(); err != nil {
		return err
	}
	if err := pv.validateClosure(); err != nil {
		return err
	}
	return nil
}

func (pv *profileValidator) validateIdentity() error {
	if pv.profile.Name == "" {
		return errors.NewValidationError("name", "business name is required")
	}
	if pv.profile.URL == "" {
		return errors.NewValidationError("url", "base URL is required")
	}
	return nil
}

func (pv *profileValidator) validateAddress() error {
	addr := pv.profile.Address
	required := []struct {
		field string
		value string
	}{
		{"address.street", addr.Street},
		{"address.city", addr.City},
		{"address.region", addr.Region},
		{"address.region_code", addr.RegionCode},
		{"address.postal_code", addr.PostalCode},
		{"address.country", addr.Country},
		{"address.country_code", addr.CountryCode},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.NewValidationError(r.field, fmt.Sprintf("%s is required", r.field))
		}
	}
	return nil
}

// validatePhone checks that the display and dial forms denote the same
// number: the dial string's digits must end with the display string's digits
// (the dial form may add a country prefix).
func (pv *profileValidator) validatePhone() error {
	phone := pv.profile.Phone
	if phone.Display == "" || phone.Tel == "" {
		return errors.NewValidationError("phone", "both phone.display and phone.tel are required")
	}

	displayDigits := digitsOf(phone.Display)
	telDigits := digitsOf(phone.Tel)
	if len(displayDigits) < 7 {
		return errors.NewValidationError("phone.display", "too few digits for a phone number")
	}
	if !strings.HasSuffix(telDigits, displayDigits) && !strings.HasSuffix(displayDigits, telDigits) {
		return errors.NewValidationError("phone", "phone.display and phone.tel denote different numbers")
	}
	return nil
}

func (pv *profileValidator) validateHours() error {
	hours := pv.profile.Hours
	if len(hours) != len(weekdayOrder) {
		return errors.NewValidationError("hours",
			fmt.Sprintf("expected %d day schedules, got %d", len(weekdayOrder), len(hours)))
	}

	for i, day := range hours {
		field := fmt.Sprintf("hours[%d]", i)
		if day.Day != weekdayOrder[i] {
			return errors.NewValidationError(field,
				fmt.Sprintf("expected %s, got %q (hours must be Monday-first)", weekdayOrder[i], day.Day))
		}

		if day.Closed {
			if day.Open != "" || day.Close != "" {
				return errors.NewValidationError(field, "closed day must not set open/close times")
			}
			continue
		}

		if day.Open == "" || day.Close == "" {
			return errors.NewValidationError(field, "open day must set both open and close times")
		}
		if err := validateClockTime(day.Open); err != nil {
			return errors.NewValidationError(field+".open", err.Error())
		}
		if err := validateClockTime(day.Close); err != nil {
			return errors.NewValidationError(field+".close", err.Error())
		}
		// "HH:MM" zero-padded 24-hour strings order lexicographically
		if day.Open >= day.Close {
			return errors.NewValidationError(field, "open time must be before close time")
		}
	}
	return nil
}

func (pv *profileValidator) validateClosure() error {
	closure := pv.profile.TemporaryClosure
	if closure == nil {
		return nil
	}

	start, err := time.ParseInLocation("2006-01-02", closure.StartDate, time.Local)
	if err != nil {
		return errors.NewValidationError("temporary_closure.start_date", "expected YYYY-MM-DD date")
	}
	end, err := time.ParseInLocation("2006-01-02", closure.EndDate, time.Local)
	if err != nil {
		return errors.NewValidationError("temporary_closure.end_date", "expected YYYY-MM-DD date")
	}
	if end.Before(start) {
		return errors.NewValidationError("temporary_closure", "end_date is before start_date")
	}
	return nil
}

// validateClockTime checks a "HH:MM" zero-padded 24-hour time string.
func validateClockTime(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("expected HH:MM time, got %q", s)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return fmt.Errorf("expected HH:MM time, got %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("time %q out of range", s)
	}
	return nil
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
