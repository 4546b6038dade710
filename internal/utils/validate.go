package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinPasswordLength = 6
	MaxClassLength    = 20
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z ]{2,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeRe  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(NormalizeEmail(email))
}

func ValidClockTime(t string) bool {
	return timeRe.MatchString(t)
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func ValidDayOfWeek(day string) bool {
	return weekdays[strings.ToLower(day)]
}

// ValidateRegistration collects field-level errors for the register payload.
func ValidateRegistration(name, email, password, class string) []string {
	var errs []string
	if !ValidName(name) {
		errs = append(errs, "name must be 2-50 characters, letters and spaces only")
	}
	if !ValidEmail(email) {
		errs = append(errs, "a valid email is required")
	}
	if len(password) < MinPasswordLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if class == "" || len(class) > MaxClassLength {
		errs = append(errs, fmt.Sprintf("class is required, at most %d characters", MaxClassLength))
	}
	return errs
}
