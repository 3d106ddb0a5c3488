package get_oven_schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

const defaultWindow = 7 * 24 * time.Hour

// resolveWindow проверяет запрос и возвращает окно [from, to)
// По умолчанию окно начинается с начала текущего дня в часовом поясе loc
func resolveWindow(req *Request, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.OvenID) == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: ovenID is required", ErrInvalidInput)
	}

	from := startOfDay(now, loc)
	if req.From != nil {
		from = req.From.UTC()
	}

	to := from.Add(defaultWindow)
	if req.To != nil {
		to = req.To.UTC()
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	if to.Sub(from) > domain.MaxScheduleWindowDays*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: max %d days", ErrWindowTooLarge, domain.MaxScheduleWindowDays)
	}

	return from, to, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
}
