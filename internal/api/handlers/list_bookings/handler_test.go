package list_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-OvenBooking/pkg/ptr"
)

type fakeService struct {
	got *models.ListBookingsRequest
	err error
}

func (f *fakeService) ListAll(_ context.Context, req *models.ListBookingsRequest) (*models.AdminBookingsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AdminBookingsResponse{
		Bookings: []models.BookingView{{ID: "b1", UserName: "Alice"}},
		Stats:    models.Stats{TotalOvens: 3, AvailableOvens: 2, ActiveBookings: 1, TotalUsers: 4, FilteredBookings: 1},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), "admin"))
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/api/v1/admin/bookings?status=active&userId=all&ovenId=o1&search=%20naber%20&dateRange=week&sortBy=oven&sortOrder=asc")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &models.ListBookingsRequest{
		UserID:    "admin",
		Status:    ptr.Ptr("active"),
		OvenID:    ptr.Ptr("o1"),
		Search:    "naber",
		DateRange: "week",
		SortBy:    "oven",
		SortOrder: "asc",
	}, svc.got)

	var resp models.AdminBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Stats.TotalOvens)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Alice", resp.Bookings[0].UserName)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: bookings.ErrAccessDenied}, "/api/v1/admin/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: bookings.ErrInvalidInput}, "/api/v1/admin/bookings?sortBy=x").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: bookings.ErrInternal}, "/api/v1/admin/bookings").Code)
}
