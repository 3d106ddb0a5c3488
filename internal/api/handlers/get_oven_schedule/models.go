package get_oven_schedule

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
	getOvenSchedule "github.com/m04kA/SMC-OvenBooking/internal/usecase/get_oven_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	OvenID     string         `json:"ovenId"`
	OvenName   string         `json:"ovenName"`
	OvenStatus string         `json:"ovenStatus"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Slots      []ScheduleSlot `json:"slots"`
}

// ScheduleSlot модель интервала расписания
type ScheduleSlot struct {
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Free      bool    `json:"free"`
	BookingID *string `json:"bookingId,omitempty"`
	UserID    *string `json:"userId,omitempty"`
	Title     *string `json:"title,omitempty"`
}

// ToUseCaseRequest формирует запрос к use case
// from и to принимаются в RFC3339 или как дата YYYY-MM-DD (полночь UTC)
func ToUseCaseRequest(ovenID, fromStr, toStr string) (*getOvenSchedule.Request, error) {
	req := &getOvenSchedule.Request{OvenID: ovenID}

	if fromStr != "" {
		from, err := parseInstant(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if toStr != "" {
		to, err := parseInstant(toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOvenSchedule.Response) *ScheduleResponse {
	slots := make([]ScheduleSlot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, ScheduleSlot{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			Free:      s.Free,
			BookingID: s.BookingID,
			UserID:    s.UserID,
			Title:     s.Title,
		})
	}

	return &ScheduleResponse{
		OvenID:     resp.OvenID,
		OvenName:   resp.OvenName,
		OvenStatus: resp.OvenStatus,
		From:       resp.From.Format(time.RFC3339),
		To:         resp.To.Format(time.RFC3339),
		Slots:      slots,
	}
}
