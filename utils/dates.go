// utils/dates.go
package utils

import (
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Time slots are 24-hour HH:MM; a single-digit hour is accepted.
var timeSlotRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateDateFormat checks a YYYY-MM-DD calendar date.
func ValidateDateFormat(date string) bool {
	t, err := time.Parse(DateLayout, date)
	return err == nil && t.Format(DateLayout) == date
}

// ValidateTimeSlot checks a HH:MM time of day.
func ValidateTimeSlot(slot string) bool {
	return timeSlotRe.MatchString(slot)
}

// CombineDateTime merges a date and a time slot into one instant in the
// server's local time.
func CombineDateTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+slot, time.Local)
}

// IsFutureDateTime reports whether date+slot is strictly after now.
func IsFutureDateTime(date, slot string) bool {
	at, err := CombineDateTime(date, slot)
	if err != nil {
		return false
	}
	return at.After(time.Now())
}

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}

// NowClock returns the current time of day as HH:MM.
func NowClock() string {
	return time.Now().Format(TimeLayout)
}
