package participation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", date(2025, time.June, 16), date(2025, time.June, 16)},
		{"wednesday goes back", date(2025, time.June, 18), date(2025, time.June, 16)},
		{"sunday belongs to previous monday", date(2025, time.June, 15), date(2025, time.June, 9)},
		{"month boundary", date(2025, time.July, 1), date(2025, time.June, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestWeekStart_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 18, 23, 45, 0, 0, time.Local)
	assert.Equal(t, date(2025, time.June, 16), WeekStart(late))
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		// June 2025 starts on a Sunday: no offset.
		{"first of month", date(2025, time.June, 1), 1},
		{"june 10 is week 2", date(2025, time.June, 10), 2},
		{"june 17 is week 3", date(2025, time.June, 17), 3},
		// July 2025 starts on a Tuesday: the offset shifts boundaries.
		{"july 5 still week 1", date(2025, time.July, 5), 1},
		{"july 6 rolls into week 2", date(2025, time.July, 6), 2},
		{"july 31 is week 5", date(2025, time.July, 31), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekOfMonth(tt.in))
		})
	}
}

func TestWeeksBetween(t *testing.T) {
	assert.Equal(t, 0, weeksBetween(date(2025, time.June, 16), date(2025, time.June, 22)))
	assert.Equal(t, 1, weeksBetween(date(2025, time.June, 11), date(2025, time.June, 18)))
	assert.Equal(t, 2, weeksBetween(date(2025, time.June, 4), date(2025, time.June, 18)))
	assert.Equal(t, -1, weeksBetween(date(2025, time.June, 18), date(2025, time.June, 11)))
}
