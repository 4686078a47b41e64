// Package isoweek implements ISO-8601 week arithmetic on local calendar dates.
package isoweek

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const day = 24 * time.Hour

var keyPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// Info describes the ISO week containing a date.
type Info struct {
	Year  int       `json:"year"`
	Week  int       `json:"week"`
	Key   string    `json:"key"`
	Start time.Time `json:"start"` // Monday, local midnight
	End   time.Time `json:"end"`   // Sunday, local midnight
}

// Of returns the ISO week information for t in t's location.
func Of(t time.Time) Info {
	year, week := t.ISOWeek()
	start := StartOfWeek(t)
	return Info{
		Year:  year,
		Week:  week,
		Key:   Key(year, week),
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// Key formats a week-year and week number as YYYY-Www.
func Key(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// KeyOf returns the week key of the ISO week containing t.
func KeyOf(t time.Time) string {
	return Key(t.ISOWeek())
}

// StartOfWeek returns local midnight of the Monday of t's ISO week.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// WeeksBetween counts whole Monday-to-Monday weeks from the ISO week of base
// to the ISO week of target. It is negative when base lies in a later week.
// Both Mondays are compared as UTC calendar dates so DST shifts cannot
// change the result.
func WeeksBetween(base, target time.Time) int {
	b := calendarDate(StartOfWeek(base))
	t := calendarDate(StartOfWeek(target))
	return int(t.Sub(b) / (7 * day))
}

// Parse turns a YYYY-Www key into the Monday that starts the week, in loc.
func Parse(key string, loc *time.Location) (time.Time, error) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid week key %q", key)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > WeeksInYear(year) {
		return time.Time{}, fmt.Errorf("week %d out of range for %d", week, year)
	}

	// Jan 4th is always in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return StartOfWeek(jan4).AddDate(0, 0, (week-1)*7), nil
}

// WeeksInYear returns 52 or 53 for an ISO week-year.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
