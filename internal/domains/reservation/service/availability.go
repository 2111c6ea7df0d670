package service

import (
	"slices"
	"time"

	"casatente/internal/domains/reservation/model"
	"casatente/internal/domains/reservation/model/dto"
	"casatente/shared/constant"
	"casatente/shared/timezone"
)

// BlockedDates expands reservations into the per-day availability view.
// Each blocking reservation occupies every day from check_in through check_out
// inclusive, so the checkout day itself is still taken. When several
// reservations cover the same day, confirmed and in_progress win over pending.
// The result is sorted by date ascending.
func BlockedDates(reservations []model.Reservation) []dto.ReservedDate {
	statusByDate := map[string]string{}

	for _, reservation := range reservations {
		if !reservation.IsBlocking() {
			continue
		}

		start := timezone.DateOf(reservation.CheckIn)
		end := timezone.DateOf(reservation.CheckOut)

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			key := day.Format(constant.DateOnlyFormat)

			current, taken := statusByDate[key]
			if taken && current != model.StatusPending {
				continue
			}

			if taken && reservation.Status == model.StatusPending {
				continue
			}

			statusByDate[key] = reservation.Status
		}
	}

	dates := make([]string, 0, len(statusByDate))
	for date := range statusByDate {
		dates = append(dates, date)
	}

	slices.Sort(dates)

	reserved := make([]dto.ReservedDate, 0, len(dates))
	for _, date := range dates {
		reserved = append(reserved, dto.ReservedDate{
			Date:   date,
			Status: statusByDate[date],
		})
	}

	return reserved
}

// firstConflictDate returns the earliest requested day already occupied by one
// of the given reservations, or the empty string when the range is free.
func firstConflictDate(reservations []model.Reservation, checkIn, checkOut time.Time) string {
	blocked := map[string]bool{}
	for _, reserved := range BlockedDates(reservations) {
		blocked[reserved.Date] = true
	}

	start := timezone.DateOf(checkIn)
	end := timezone.DateOf(checkOut)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(constant.DateOnlyFormat)
		if blocked[key] {
			return key
		}
	}

	return ""
}
