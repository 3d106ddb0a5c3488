package cancel_booking

import (
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Тело необязательно для владельца; администратор указывает причину из списка
type CancelBookingRequest struct {
	Reason  *string `json:"reason,omitempty"`
	Details *string `json:"details,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID string) *models.CancelBookingRequest {
	req := &models.CancelBookingRequest{UserID: userID}
	if r.Reason != nil {
		req.Reason = *r.Reason
	}
	if r.Details != nil {
		req.Details = *r.Details
	}
	return req
}
