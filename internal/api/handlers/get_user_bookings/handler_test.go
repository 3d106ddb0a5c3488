package get_user_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
)

type fakeService struct {
	result *models.BookingListResponse
	err    error
	got    *models.GetUserBookingsRequest
}

func (f *fakeService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+target+"/bookings?status=active", nil)
	r = mux.SetURLVars(r, map[string]string{"userId": target})
	r = r.WithContext(middleware.WithUserID(r.Context(), "u1"))
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{result: &models.BookingListResponse{
		Bookings: []models.BookingView{{ID: "b1"}, {ID: "b2"}},
	}}

	w := serve(svc, "u1")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "u1", svc.got.UserID)
	assert.Equal(t, "u1", svc.got.TargetUserID)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "active", *svc.got.Status)
	// ответ это массив, без обертки
	assert.Equal(t, '[', rune(w.Body.String()[0]))
	assert.Contains(t, w.Body.String(), `"id":"b2"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		bookings.ErrAccessDenied: http.StatusForbidden,
		bookings.ErrInvalidInput: http.StatusBadRequest,
		bookings.ErrInternal:     http.StatusInternalServerError,
	}
	for err, status := range cases {
		assert.Equal(t, status, serve(&fakeService{err: err}, "u2").Code, err.Error())
	}
}

func TestHandle_MissingUser(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/bookings", nil)
	r = mux.SetURLVars(r, map[string]string{"userId": "u1"})
	w := httptest.NewRecorder()

	NewHandler(&fakeService{}, nopLogger{}).Handle(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
