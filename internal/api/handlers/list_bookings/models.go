package list_bookings

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// status, userId, ovenId, search, dateRange, sortBy, sortOrder
func ToServiceRequest(userID string, query url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		UserID:    userID,
		Status:    optional(query.Get("status")),
		FilterBy:  optional(query.Get("userId")),
		OvenID:    optional(query.Get("ovenId")),
		Search:    strings.TrimSpace(query.Get("search")),
		DateRange: query.Get("dateRange"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}
}

func optional(v string) *string {
	if v == "" || v == "all" {
		return nil
	}
	return &v
}
