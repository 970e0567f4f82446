package services

import "time"

// startOfDay returns local midnight of the day containing t in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// dayWindow returns [midnight, next midnight) of the day containing t, shifted by
// offset days. Calendar arithmetic keeps windows correct across DST changes.
func dayWindow(t time.Time, offset int, loc *time.Location) (time.Time, time.Time) {
	start := startOfDay(t, loc).AddDate(0, 0, offset)
	return start, start.AddDate(0, 0, 1)
}

// monthWindow returns [first of month, first of next month) for the month containing t.
func monthWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// daysInMonth returns the number of days of the month containing t.
func daysInMonth(t time.Time, loc *time.Location) int {
	_, end := monthWindow(t, loc)
	return end.AddDate(0, 0, -1).Day()
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
