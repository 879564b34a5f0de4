package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
// Input is assumed to be a well-formed 24h string from a time control.
func ToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute
}

// WorkingHours renders the elapsed time between two clock strings as
// "{h}h {m}m". A checkout earlier than the check-in wraps across midnight,
// so overnight shifts come out positive. Returns "" when either side is
// still unset.
func WorkingHours(checkIn, checkOut string) string {
	if checkIn == "" || checkOut == "" {
		return ""
	}

	diff := ToMinutes(checkOut) - ToMinutes(checkIn)
	if diff < 0 {
		diff += minutesPerDay
	}

	return fmt.Sprintf("%dh %dm", diff/60, diff%60)
}

// BackfillCheckIn derives a check-in time one hour before the given
// check-out, floored at midnight. Used when a check-out is recorded with no
// prior check-in.
func BackfillCheckIn(checkOut string) string {
	parts := strings.SplitN(checkOut, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	hour--
	if hour < 0 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Clock formats a wall-clock instant as a zero-padded "HH:MM" string.
func Clock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ISODate formats a wall-clock instant as "YYYY-MM-DD".
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameMonth reports whether two ISO dates fall in the same calendar month
// and year. Unparseable dates never match.
func SameMonth(a, b string) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}
