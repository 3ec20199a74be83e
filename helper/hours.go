package helper

import (
	"strings"
	"time"
)

const hourLayout = "15:04"

// IsOpenAt decides whether a restaurant is open at t, given its opening and
// closing time-of-day strings ("HH:MM") and its day-off set (lowercase
// weekday names). A closing hour at or before the opening hour means the
// window wraps past midnight.
func IsOpenAt(openingHour, closingHour string, daysOff []string, t time.Time) (bool, error) {
	opening, err := time.Parse(hourLayout, openingHour)
	if err != nil {
		return false, err
	}
	closing, err := time.Parse(hourLayout, closingHour)
	if err != nil {
		return false, err
	}

	weekday := strings.ToLower(t.Weekday().String())
	for _, day := range daysOff {
		if strings.ToLower(day) == weekday {
			return false, nil
		}
	}

	minuteOfDay := t.Hour()*60 + t.Minute()
	openMinute := opening.Hour()*60 + opening.Minute()
	closeMinute := closing.Hour()*60 + closing.Minute()

	if openMinute < closeMinute {
		return minuteOfDay >= openMinute && minuteOfDay < closeMinute, nil
	}
	// wraps midnight
	return minuteOfDay >= openMinute || minuteOfDay < closeMinute, nil
}

// IsOpenNow is IsOpenAt against the current instant.
func IsOpenNow(openingHour, closingHour string, daysOff []string) (bool, error) {
	return IsOpenAt(openingHour, closingHour, daysOff, time.Now())
}
