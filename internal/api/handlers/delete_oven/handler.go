package delete_oven

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/ovens"
)

const (
	msgInvalidOvenID = "некорректный ID печи"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgNotFound      = "печь не найдена"
	msgInUse         = "у печи есть активные бронирования"
	msgReferenced    = "у печи есть история бронирований, переведите ее в статус retired"
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

// Handle DELETE /api/v1/ovens/{ovenId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ovenID := mux.Vars(r)["ovenId"]
	if ovenID == "" {
		handlers.RespondBadRequest(w, msgInvalidOvenID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /ovens/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), ovenID, userID); err != nil {
		switch {
		case errors.Is(err, ovens.ErrAccessDenied):
			h.logger.Warn("DELETE /ovens/{id} - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, ovens.ErrOvenNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ovens.ErrOvenInUse):
			handlers.RespondConflict(w, msgInUse)

		case errors.Is(err, ovens.ErrOvenReferenced):
			handlers.RespondConflict(w, msgReferenced)

		default:
			h.logger.Error("DELETE /ovens/{id} - Failed to delete oven: oven_id=%s, error=%v", ovenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /ovens/{id} - Oven deleted successfully: oven_id=%s, user_id=%s", ovenID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
