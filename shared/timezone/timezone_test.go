package timezone_test

import (
	"testing"
	"time"

	"casatente/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDateOf(t *testing.T) {
	stamp := time.Date(2026, 9, 10, 17, 45, 12, 0, timezone.GetLocation())
	day := timezone.DateOf(stamp)

	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Errorf("DateOf() kept a time-of-day component: %v", day)
	}

	if day.Year() != 2026 || day.Month() != time.September || day.Day() != 10 {
		t.Errorf("DateOf() changed the calendar date: %v", day)
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	now := timezone.Now()

	if today.After(now) {
		t.Error("Today() is in the future")
	}

	if today.Hour() != 0 {
		t.Errorf("Today() is not midnight: %v", today)
	}
}
