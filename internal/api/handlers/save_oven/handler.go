package save_oven

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные печи"
	msgNotFound           = "печь не найдена"
	msgDuplicateName      = "печь с таким названием уже существует"
)

type Handler struct {
	service OvenService
	logger  Logger
}

func NewHandler(service OvenService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/ovens и PUT /api/v1/ovens/{ovenId}
// Без ovenId в пути создает печь, с ovenId изменяет существующую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s /ovens - Missing user ID", r.Method)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveOvenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s /ovens - Invalid request body: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ovenID := mux.Vars(r)["ovenId"]
	serviceReq := req.ToServiceRequest(userID, ovenID)

	status := http.StatusOK
	var (
		result interface{}
		err    error
	)
	if ovenID == "" {
		result, err = h.service.Create(r.Context(), serviceReq)
		status = http.StatusCreated
	} else {
		result, err = h.service.Update(r.Context(), serviceReq)
	}

	if err != nil {
		switch {
		case errors.Is(err, ovens.ErrAccessDenied):
			h.logger.Warn("%s /ovens - Access denied: user_id=%s", r.Method, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, ovens.ErrInvalidInput):
			h.logger.Warn("%s /ovens - Invalid input: %v", r.Method, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ovens.ErrOvenNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ovens.ErrDuplicateName):
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("%s /ovens - Failed to save oven: oven_id=%s, error=%v", r.Method, ovenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s /ovens - Oven saved successfully: oven_id=%s, user_id=%s", r.Method, ovenID, userID)
	handlers.RespondJSON(w, status, result)
}
