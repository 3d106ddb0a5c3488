package models

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// SaveOvenRequest запрос на создание или изменение печи
// OvenID пустой при создании
type SaveOvenRequest struct {
	UserID         string
	OvenID         string
	Name           string
	Status         string
	Description    *string
	MaxTemperature *int
	Capacity       *string
	Location       *string
}

// ListOvensRequest запрос на получение списка печей
type ListOvensRequest struct {
	Status *string
}

// OvenResponse печь в ответе API
type OvenResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Description    *string   `json:"description,omitempty"`
	MaxTemperature *int      `json:"maxTemperature,omitempty"`
	Capacity       *string   `json:"capacity,omitempty"`
	Location       *string   `json:"location,omitempty"`
	Bookable       bool      `json:"bookable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OvenListResponse список печей
type OvenListResponse struct {
	Ovens []OvenResponse `json:"ovens"`
}

// ToDomain собирает доменную печь из запроса
// Пустой статус означает active
func (r *SaveOvenRequest) ToDomain() *domain.Oven {
	status := domain.OvenStatus(r.Status)
	if status == "" {
		status = domain.OvenStatusActive
	}
	return &domain.Oven{
		ID:             r.OvenID,
		Name:           r.Name,
		Status:         status,
		Description:    r.Description,
		MaxTemperature: r.MaxTemperature,
		Capacity:       r.Capacity,
		Location:       r.Location,
	}
}

// FromDomain конвертирует доменную печь в ответ
func FromDomain(o *domain.Oven) *OvenResponse {
	return &OvenResponse{
		ID:             o.ID,
		Name:           o.Name,
		Status:         string(o.Status),
		Description:    o.Description,
		MaxTemperature: o.MaxTemperature,
		Capacity:       o.Capacity,
		Location:       o.Location,
		Bookable:       o.IsBookable(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// FromDomainList конвертирует список печей
func FromDomainList(ovens []domain.Oven) *OvenListResponse {
	resp := &OvenListResponse{Ovens: make([]OvenResponse, 0, len(ovens))}
	for i := range ovens {
		resp.Ovens = append(resp.Ovens, *FromDomain(&ovens[i]))
	}
	return resp
}
