package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"casatente/internal/domains/reservation/model"
	"casatente/internal/domains/reservation/model/dto"
	"casatente/shared/constant"
	"casatente/shared/timezone"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}

	return parsed
}

func TestBlockedDates(t *testing.T) {
	tests := []struct {
		name         string
		reservations []model.Reservation
		want         []dto.ReservedDate
	}{
		{
			name:         "no reservations",
			reservations: []model.Reservation{},
			want:         []dto.ReservedDate{},
		},
		{
			name: "single stay blocks every day through checkout",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-12"), Status: model.StatusConfirmed},
			},
			want: []dto.ReservedDate{
				{Date: "2026-09-10", Status: model.StatusConfirmed},
				{Date: "2026-09-11", Status: model.StatusConfirmed},
				{Date: "2026-09-12", Status: model.StatusConfirmed},
			},
		},
		{
			name: "terminal statuses do not block",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-11"), Status: model.StatusCancelled},
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-11"), Status: model.StatusExpired},
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-11"), Status: model.StatusCompleted},
			},
			want: []dto.ReservedDate{},
		},
		{
			name: "confirmed wins over pending on shared days",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-12"), Status: model.StatusPending},
				{CheckIn: date(t, "2026-09-11"), CheckOut: date(t, "2026-09-13"), Status: model.StatusConfirmed},
			},
			want: []dto.ReservedDate{
				{Date: "2026-09-10", Status: model.StatusPending},
				{Date: "2026-09-11", Status: model.StatusConfirmed},
				{Date: "2026-09-12", Status: model.StatusConfirmed},
				{Date: "2026-09-13", Status: model.StatusConfirmed},
			},
		},
		{
			name: "pending never overwrites an earlier non pending day",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-11"), CheckOut: date(t, "2026-09-13"), Status: model.StatusInProgress},
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-12"), Status: model.StatusPending},
			},
			want: []dto.ReservedDate{
				{Date: "2026-09-10", Status: model.StatusPending},
				{Date: "2026-09-11", Status: model.StatusInProgress},
				{Date: "2026-09-12", Status: model.StatusInProgress},
				{Date: "2026-09-13", Status: model.StatusInProgress},
			},
		},
		{
			name: "disjoint stays come back sorted by date",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-20"), CheckOut: date(t, "2026-09-21"), Status: model.StatusConfirmed},
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-11"), Status: model.StatusPending},
			},
			want: []dto.ReservedDate{
				{Date: "2026-09-10", Status: model.StatusPending},
				{Date: "2026-09-11", Status: model.StatusPending},
				{Date: "2026-09-20", Status: model.StatusConfirmed},
				{Date: "2026-09-21", Status: model.StatusConfirmed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlockedDates(tt.reservations)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstConflictDate(t *testing.T) {
	tests := []struct {
		name         string
		reservations []model.Reservation
		checkIn      string
		checkOut     string
		want         string
	}{
		{
			name:         "free range has no conflict",
			reservations: []model.Reservation{},
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-12",
			want:         "",
		},
		{
			name: "existing checkout day still blocks the new check in",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-08"), CheckOut: date(t, "2026-09-10"), Status: model.StatusConfirmed},
			},
			checkIn:  "2026-09-10",
			checkOut: "2026-09-12",
			want:     "2026-09-10",
		},
		{
			name: "earliest occupied requested day is reported",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-11"), CheckOut: date(t, "2026-09-12"), Status: model.StatusPending},
				{CheckIn: date(t, "2026-09-14"), CheckOut: date(t, "2026-09-15"), Status: model.StatusConfirmed},
			},
			checkIn:  "2026-09-10",
			checkOut: "2026-09-15",
			want:     "2026-09-11",
		},
		{
			name: "cancelled stays do not conflict",
			reservations: []model.Reservation{
				{CheckIn: date(t, "2026-09-10"), CheckOut: date(t, "2026-09-12"), Status: model.StatusCancelled},
			},
			checkIn:  "2026-09-10",
			checkOut: "2026-09-12",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstConflictDate(tt.reservations, date(t, tt.checkIn), date(t, tt.checkOut))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, nights(date(t, "2026-09-10"), date(t, "2026-09-11")))
	assert.Equal(t, 4, nights(date(t, "2026-09-10"), date(t, "2026-09-14")))

	t.Run("one night across a spring forward shift", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("timezone database has no America/New_York: %v", err)
		}

		checkIn := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
		checkOut := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

		assert.Equal(t, 1, nights(checkIn, checkOut))
	})
}
