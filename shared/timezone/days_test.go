package timezone

import (
	"testing"
	"time"
)

func withLocation(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone database has no %s: %v", name, err)
	}

	prev := appLocation
	appLocation = loc
	t.Cleanup(func() { appLocation = prev })

	return loc
}

func TestDaysBetween(t *testing.T) {
	loc := GetLocation()

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "single day",
			from: time.Date(2026, 9, 10, 0, 0, 0, 0, loc),
			to:   time.Date(2026, 9, 11, 0, 0, 0, 0, loc),
			want: 1,
		},
		{
			name: "several days",
			from: time.Date(2026, 9, 10, 0, 0, 0, 0, loc),
			to:   time.Date(2026, 9, 14, 0, 0, 0, 0, loc),
			want: 4,
		},
		{
			name: "same day",
			from: time.Date(2026, 9, 10, 0, 0, 0, 0, loc),
			to:   time.Date(2026, 9, 10, 0, 0, 0, 0, loc),
			want: 0,
		},
		{
			name: "time of day is ignored",
			from: time.Date(2026, 9, 10, 23, 30, 0, 0, loc),
			to:   time.Date(2026, 9, 11, 0, 15, 0, 0, loc),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetweenAcrossDSTShift(t *testing.T) {
	loc := withLocation(t, "America/New_York")

	t.Run("spring forward day is 23h but still one day", func(t *testing.T) {
		from := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
		to := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

		if got := DaysBetween(from, to); got != 1 {
			t.Errorf("DaysBetween() = %d, want 1", got)
		}
	})

	t.Run("fall back day is 25h but still one day", func(t *testing.T) {
		from := time.Date(2026, 11, 1, 0, 0, 0, 0, loc)
		to := time.Date(2026, 11, 2, 0, 0, 0, 0, loc)

		if got := DaysBetween(from, to); got != 1 {
			t.Errorf("DaysBetween() = %d, want 1", got)
		}
	})

	t.Run("span covering both shifts", func(t *testing.T) {
		from := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
		to := time.Date(2026, 11, 2, 0, 0, 0, 0, loc)

		if got := DaysBetween(from, to); got != 240 {
			t.Errorf("DaysBetween() = %d, want 240", got)
		}
	})
}
