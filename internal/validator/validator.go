// Package validator решает, можно ли принять бронирование печи.
//
// Validate чистая функция: не делает I/O и не изменяет existing.
// Проверки выполняются в фиксированном порядке, первая неудачная определяет причину отказа.
package validator

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

const hoursPerDay = 24

// Validate classifies candidate against the snapshot of existing reservations
func Validate(candidate domain.Reservation, existing []domain.Reservation, policy domain.ValidationPolicy, now time.Time) Decision {
	// 0. Кандидат без пользователя или печи
	if candidate.RequesterID == "" || candidate.ResourceID == "" {
		return reject(ReasonMalformedCandidate)
	}

	// 1. Интервал
	if !candidate.Start.Before(candidate.End) {
		return reject(ReasonInvalidInterval)
	}

	// 2. Начало в прошлом (только для новых бронирований)
	if !policy.IsEdit() && candidate.Start.Before(now.Add(policy.MinLeadTime)) {
		return reject(ReasonStartInPast)
	}

	// 3. Лимит активных бронирований пользователя
	if countActiveByRequester(candidate, existing) >= policy.MaxActiveReservationsPerRequester {
		return reject(ReasonQuotaExceeded)
	}

	// 4. Длительность в календарных днях
	if SpanDays(candidate.Start, candidate.End, policy.Zone()) > policy.MaxReservationSpanDays {
		return reject(ReasonSpanTooLong)
	}

	// 5. Пересечение с бронированиями той же печи
	if conflict, ok := firstConflict(candidate, existing); ok {
		return Decision{Reason: ReasonResourceConflict, ConflictingID: conflict.ID}
	}

	return accept()
}

// SpanDays returns the inclusive number of calendar days covered by [start, end] in loc
// 09:00 дня N до 17:00 дня N+1 дает 2 дня
func SpanDays(start, end time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	first := calendarDate(start.In(loc))
	last := calendarDate(end.In(loc))
	return int(last.Sub(first).Hours()/hoursPerDay) + 1
}

// calendarDate переносит дату в полночь UTC, чтобы переходы на летнее время не влияли на разницу
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func countActiveByRequester(candidate domain.Reservation, existing []domain.Reservation) int {
	count := 0
	for i := range existing {
		r := &existing[i]
		if r.RequesterID != candidate.RequesterID || !r.IsActive() {
			continue
		}
		if candidate.ID != "" && r.ID == candidate.ID {
			continue
		}
		count++
	}
	return count
}

// firstConflict returns the overlapping reservation with the earliest start, ties broken by id
func firstConflict(candidate domain.Reservation, existing []domain.Reservation) (domain.Reservation, bool) {
	var (
		best  domain.Reservation
		found bool
	)
	for i := range existing {
		r := &existing[i]
		if r.ResourceID != candidate.ResourceID || !r.IsActive() {
			continue
		}
		if candidate.ID != "" && r.ID == candidate.ID {
			continue
		}
		if !r.Overlaps(candidate.Start, candidate.End) {
			continue
		}
		if !found || r.Start.Before(best.Start) || (r.Start.Equal(best.Start) && r.ID < best.ID) {
			best = *r
			found = true
		}
	}
	return best, found
}
