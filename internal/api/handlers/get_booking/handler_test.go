package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings"
	"github.com/m04kA/SMC-OvenBooking/internal/service/bookings/models"
)

type fakeService struct {
	view   *models.BookingView
	err    error
	gotID  string
	gotUID string
}

func (f *fakeService) GetByID(_ context.Context, id string, userID string) (*models.BookingView, error) {
	f.gotID, f.gotUID = id, userID
	return f.view, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, withUser bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b1", nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": "b1"})
	if withUser {
		r = r.WithContext(middleware.WithUserID(r.Context(), "u1"))
	}
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{view: &models.BookingView{ID: "b1", OvenName: "Carbolite", CanCancel: true}}

	w := serve(svc, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", svc.gotID)
	assert.Equal(t, "u1", svc.gotUID)
	assert.Contains(t, w.Body.String(), `"ovenName":"Carbolite"`)
	assert.Contains(t, w.Body.String(), `"canCancel":true`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		bookings.ErrBookingNotFound: http.StatusNotFound,
		bookings.ErrAccessDenied:    http.StatusForbidden,
		bookings.ErrInternal:        http.StatusInternalServerError,
	}
	for err, status := range cases {
		assert.Equal(t, status, serve(&fakeService{err: err}, true).Code, err.Error())
	}
}

func TestHandle_MissingUser(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusUnauthorized, serve(svc, false).Code)
	assert.Empty(t, svc.gotID)
}
