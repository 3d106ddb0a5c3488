package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/m04kA/SMC-OvenBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OvenID string `json:"ovenId"`
	Title  string `json:"title"`
	Start  string `json:"start"` // RFC3339
	End    string `json:"end"`   // RFC3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	OvenID    string `json:"ovenId"`
	OvenName  string `json:"ovenName"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &createBooking.Request{
		UserID: userID,
		OvenID: r.OvenID,
		Title:  r.Title,
		Start:  start,
		End:    end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		OvenID:    resp.OvenID,
		OvenName:  resp.OvenName,
		Title:     resp.Title,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
