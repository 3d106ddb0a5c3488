package models

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

const (
	weekRange  = 7 * 24 * time.Hour
	monthRange = 30 * 24 * time.Hour
)

// FilterAndSort применяет фильтр панели администратора к представлениям
// Исходный слайс не изменяется. Календарные дни считаются в loc.
func FilterAndSort(views []BookingView, filter domain.BookingsFilter, now time.Time, loc *time.Location) []BookingView {
	filter = filter.Normalize()
	if loc == nil {
		loc = time.UTC
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	dayStart, dayEnd := dayBounds(now, loc)

	result := make([]BookingView, 0, len(views))
	for _, v := range views {
		if filter.Status != nil && v.Status != string(*filter.Status) {
			continue
		}
		if filter.UserID != nil && v.UserID != *filter.UserID {
			continue
		}
		if filter.OvenID != nil && v.OvenID != *filter.OvenID {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		if !inDateRange(v.StartTime, filter.DateRange, now, dayStart, dayEnd) {
			continue
		}
		result = append(result, v)
	}

	sortViews(result, filter.SortBy, filter.SortOrder)

	return result
}

// ComputeStats считает сводку панели администратора
func ComputeStats(ovens []domain.Oven, users []domain.User, activeBookings int, filtered int) Stats {
	available := 0
	for i := range ovens {
		if ovens[i].IsBookable() {
			available++
		}
	}
	return Stats{
		TotalOvens:       len(ovens),
		AvailableOvens:   available,
		ActiveBookings:   activeBookings,
		TotalUsers:       len(users),
		FilteredBookings: filtered,
	}
}

func matchesSearch(v BookingView, search string) bool {
	for _, field := range []string{v.UserName, v.OvenName, v.Title, v.UserEmail} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// inDateRange today: тот же календарный день; week/month: начало в (now-7д/30д, конец сегодняшнего дня)
func inDateRange(start time.Time, dateRange domain.DateRange, now, dayStart, dayEnd time.Time) bool {
	switch dateRange {
	case domain.DateRangeToday:
		return !start.Before(dayStart) && start.Before(dayEnd)
	case domain.DateRangeWeek:
		return start.After(now.Add(-weekRange)) && start.Before(dayEnd)
	case domain.DateRangeMonth:
		return start.After(now.Add(-monthRange)) && start.Before(dayEnd)
	}
	return true
}

func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func sortViews(views []BookingView, by domain.SortField, order domain.SortOrder) {
	sort.SliceStable(views, func(i, j int) bool {
		c := compareViews(views[i], views[j], by)
		if c == 0 {
			// Одинаковые значения упорядочиваются по ID независимо от направления
			return views[i].ID < views[j].ID
		}
		if order == domain.SortAsc {
			return c < 0
		}
		return c > 0
	})
}

func compareViews(a, b BookingView, by domain.SortField) int {
	switch by {
	case domain.SortByUser:
		return strings.Compare(strings.ToLower(a.UserName), strings.ToLower(b.UserName))
	case domain.SortByOven:
		return strings.Compare(strings.ToLower(a.OvenName), strings.ToLower(b.OvenName))
	case domain.SortByStatus:
		return strings.Compare(a.Status, b.Status)
	}
	return a.StartTime.Compare(b.StartTime)
}
