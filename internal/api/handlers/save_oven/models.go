package save_oven

import (
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
)

// SaveOvenRequest HTTP request model
type SaveOvenRequest struct {
	Name           string  `json:"name"`
	Status         string  `json:"status,omitempty"`
	Description    *string `json:"description,omitempty"`
	MaxTemperature *int    `json:"maxTemperature,omitempty"`
	Capacity       *string `json:"capacity,omitempty"`
	Location       *string `json:"location,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SaveOvenRequest) ToServiceRequest(userID, ovenID string) *models.SaveOvenRequest {
	return &models.SaveOvenRequest{
		UserID:         userID,
		OvenID:         ovenID,
		Name:           r.Name,
		Status:         r.Status,
		Description:    r.Description,
		MaxTemperature: r.MaxTemperature,
		Capacity:       r.Capacity,
		Location:       r.Location,
	}
}
