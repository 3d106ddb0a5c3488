package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

const (
	UnknownUserName = "Unknown User"
	UnknownOvenName = "Unknown Oven"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID  string `json:"userId"`
	Reason  string `json:"reason,omitempty"`  // Обязательна для администратора
	Details string `json:"details,omitempty"` // Обязательны для "Personal Request"
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID       string  `json:"userId"`       // Кто запрашивает
	TargetUserID string  `json:"targetUserId"` // Чьи бронирования
	Status       *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос администратора на список всех бронирований
type ListBookingsRequest struct {
	UserID    string  `json:"userId"`
	Status    *string `json:"status,omitempty"`
	FilterBy  *string `json:"filterUserId,omitempty"`
	OvenID    *string `json:"ovenId,omitempty"`
	Search    string  `json:"search,omitempty"`
	DateRange string  `json:"dateRange,omitempty"`
	SortBy    string  `json:"sortBy,omitempty"`
	SortOrder string  `json:"sortOrder,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID:    r.FilterBy,
		OvenID:    r.OvenID,
		Search:    r.Search,
		DateRange: domain.DateRange(r.DateRange),
		SortBy:    domain.SortField(r.SortBy),
		SortOrder: domain.SortOrder(r.SortOrder),
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if !filter.IsValid() {
		return filter, errors.New("invalid filter")
	}

	return filter.Normalize(), nil
}

// Response модели

// BookingView бронирование с данными для отображения
// Поля UserName, UserEmail, OvenName и CanCancel вычисляются и не хранятся
type BookingView struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	OvenID             string     `json:"ovenId"`
	Title              string     `json:"title"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            time.Time  `json:"endTime"`
	Status             string     `json:"status"`
	UserName           string     `json:"userName"`
	UserEmail          string     `json:"userEmail"`
	OvenName           string     `json:"ovenName"`
	CanCancel          bool       `json:"canCancel"`
	CancelledBy        *string    `json:"cancelledBy,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}

// Stats сводка для панели администратора
type Stats struct {
	TotalOvens       int `json:"totalOvens"`
	AvailableOvens   int `json:"availableOvens"`
	ActiveBookings   int `json:"activeBookings"`
	TotalUsers       int `json:"totalUsers"`
	FilteredBookings int `json:"filteredBookings"`
}

// AdminBookingsResponse ответ панели администратора
type AdminBookingsResponse struct {
	Bookings []BookingView `json:"bookings"`
	Stats    Stats         `json:"stats"`
}

// ViewContext справочники для сборки представлений
type ViewContext struct {
	Users map[string]domain.User
	Ovens map[string]domain.Oven
	// ViewerID пользователь, для которого считается CanCancel
	ViewerID             string
	Now                  time.Time
	CancellationLeadTime time.Duration
}

// NewViewContext индексирует пользователей и печи по ID
func NewViewContext(users []domain.User, ovens []domain.Oven, viewerID string, now time.Time, lead time.Duration) ViewContext {
	vc := ViewContext{
		Users:                make(map[string]domain.User, len(users)),
		Ovens:                make(map[string]domain.Oven, len(ovens)),
		ViewerID:             viewerID,
		Now:                  now,
		CancellationLeadTime: lead,
	}
	for _, u := range users {
		vc.Users[u.ID] = u
	}
	for _, o := range ovens {
		vc.Ovens[o.ID] = o
	}
	return vc
}

// Методы конвертации

// BuildView собирает представление бронирования
func BuildView(r *domain.Reservation, vc ViewContext) BookingView {
	view := BookingView{
		ID:                 r.ID,
		UserID:             r.RequesterID,
		OvenID:             r.ResourceID,
		Title:              r.Title,
		StartTime:          r.Start,
		EndTime:            r.End,
		Status:             string(r.Status),
		UserName:           UnknownUserName,
		OvenName:           UnknownOvenName,
		CanCancel:          r.CanBeCancelledBy(vc.ViewerID, vc.Now, vc.CancellationLeadTime),
		CancelledBy:        r.CancelledBy,
		CancelledAt:        r.CancelledAt,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if u, ok := vc.Users[r.RequesterID]; ok {
		if u.Name != "" {
			view.UserName = u.Name
		}
		view.UserEmail = u.Email
	}
	if o, ok := vc.Ovens[r.ResourceID]; ok {
		view.OvenName = o.Name
	}

	return view
}

// BuildViews собирает представления списка бронирований
func BuildViews(reservations []domain.Reservation, vc ViewContext) []BookingView {
	views := make([]BookingView, len(reservations))
	for i := range reservations {
		views[i] = BuildView(&reservations[i], vc)
	}
	return views
}

// ToDomainBookingStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainBookingStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
