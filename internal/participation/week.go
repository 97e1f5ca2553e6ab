package participation

import "time"

// Days lists the schedulable days in week order, as used in week keys.
var Days = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// DayOffsets maps a day name to its offset from the Monday week start.
var DayOffsets = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
	"sabado":    5,
	"domingo":   6,
}

// dateOnly normalizes a timestamp to midnight UTC so that day and week
// arithmetic is exact regardless of the input location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = dateOnly(t)
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return t.AddDate(0, 0, -offset)
}

// WeekOfMonth returns the 1-indexed week-of-month for t, offset-aware so
// that week boundaries align with the calendar rather than day/7.
func WeekOfMonth(t time.Time) int {
	t = dateOnly(t)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // Sunday = 0
	return (t.Day()+offset-1)/7 + 1
}

// weeksBetween returns the whole-week difference between the week start
// of a and the week start of b (positive when b is later).
func weeksBetween(a, b time.Time) int {
	days := int(WeekStart(b).Sub(WeekStart(a)).Hours() / 24)
	return days / 7
}

// sameMonth reports whether a and b fall in the same calendar month and year.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
