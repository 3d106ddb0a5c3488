package save_oven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens/models"
)

type fakeService struct {
	created, updated *models.SaveOvenRequest
	err              error
}

func (f *fakeService) Create(_ context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.OvenResponse{ID: "o-new", Name: req.Name}, nil
}

func (f *fakeService) Update(_ context.Context, req *models.SaveOvenRequest) (*models.OvenResponse, error) {
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.OvenResponse{ID: req.OvenID, Name: req.Name}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), "admin")))
		})
	})
	r.HandleFunc("/ovens", h.Handle).Methods(http.MethodPost)
	r.HandleFunc("/ovens/{ovenId}", h.Handle).Methods(http.MethodPut)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestHandle_CreateAndUpdate(t *testing.T) {
	svc := &fakeService{}
	r := router(svc)

	w := do(r, http.MethodPost, "/ovens", `{"name":"Carbolite","maxTemperature":1200}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "admin", svc.created.UserID)
	assert.Equal(t, 1200, *svc.created.MaxTemperature)

	w = do(r, http.MethodPut, "/ovens/o1", `{"name":"Carbolite","status":"maintenance"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, "o1", svc.updated.OvenID)
	assert.Equal(t, "maintenance", svc.updated.Status)
}

func TestHandle_Errors(t *testing.T) {
	cases := map[error]int{
		ovens.ErrAccessDenied:  http.StatusForbidden,
		ovens.ErrInvalidInput:  http.StatusBadRequest,
		ovens.ErrOvenNotFound:  http.StatusNotFound,
		ovens.ErrDuplicateName: http.StatusConflict,
		ovens.ErrInternal:      http.StatusInternalServerError,
	}
	for err, status := range cases {
		w := do(router(&fakeService{err: err}), http.MethodPut, "/ovens/o1", `{"name":"X"}`)
		assert.Equal(t, status, w.Code, err.Error())
	}

	assert.Equal(t, http.StatusBadRequest, do(router(&fakeService{}), http.MethodPost, "/ovens", `{"name":`).Code)
}
