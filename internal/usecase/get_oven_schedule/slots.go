package get_oven_schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// buildSlots разбивает окно [from, to) на занятые и свободные интервалы
// Бронирования обрезаются по границам окна. Пересекающиеся бронирования
// (возможны только для данных до появления ограничения в БД) выводятся как есть,
// свободный интервал между ними не создается.
func buildSlots(reservations []domain.Reservation, from, to time.Time) []domain.ScheduleSlot {
	active := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.IsActive() && r.Overlaps(from, to) {
			active = append(active, r)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].Start.Equal(active[j].Start) {
			return active[i].Start.Before(active[j].Start)
		}
		return active[i].ID < active[j].ID
	})

	slots := make([]domain.ScheduleSlot, 0, len(active)*2+1)
	cursor := from

	for i := range active {
		r := active[i]
		start := maxTime(r.Start, from)
		end := minTime(r.End, to)

		// Свободный интервал до бронирования
		if cursor.Before(start) {
			slots = append(slots, domain.ScheduleSlot{Start: cursor, End: start})
		}

		id, requester, title := r.ID, r.RequesterID, r.Title
		slots = append(slots, domain.ScheduleSlot{
			Start:         start,
			End:           end,
			ReservationID: &id,
			RequesterID:   &requester,
			Title:         &title,
		})

		if end.After(cursor) {
			cursor = end
		}
	}

	// Хвост окна
	if cursor.Before(to) {
		slots = append(slots, domain.ScheduleSlot{Start: cursor, End: to})
	}

	return slots
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
