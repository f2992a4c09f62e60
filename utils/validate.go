package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// YYYY-MM-DD with month 01-12 and day 1-31; day count per month is not
	// checked.
	datePattern = regexp.MustCompile(`^([0-9]{4})-(0[1-9]|1[0-2]|[1-9])-([1-9]|0[1-9]|[1-2][0-9]|3[0-1])$`)
)

// UserDetailsValid checks a login body: a plausible email and a password of
// at least 12 characters. The credentials belong to the external tracker,
// so nothing beyond shape can be checked here.
func UserDetailsValid(userEmail, userPassword string) bool {
	if !emailPattern.MatchString(userEmail) {
		return false
	}
	if len(userPassword) < 12 {
		return false
	}
	return true
}

func DateValid(date string) bool { return datePattern.MatchString(date) }

// ParseDay reads a date that passed DateValid into a UTC midnight time.
// The validator does not check day count per month, so calendar-invalid
// dates like 2024-02-30 roll over into the next month rather than
// collapsing to the zero time.
func ParseDay(date string) time.Time {
	parts := strings.SplitN(date, "-", 3)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
