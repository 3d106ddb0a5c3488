package get_oven_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	getOvenSchedule "github.com/m04kA/SMC-OvenBooking/internal/usecase/get_oven_schedule"
)

const (
	msgInvalidOvenID  = "некорректный ID печи"
	msgInvalidDate    = "некорректный формат даты, ожидается RFC3339 или YYYY-MM-DD"
	msgOvenNotFound   = "печь не найдена"
	msgInvalidWindow  = "начало периода должно быть раньше конца"
	msgWindowTooLarge = "слишком большой период, максимум 62 дня"
)

type Handler struct {
	useCase GetOvenScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetOvenScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/ovens/{ovenId}/schedule
// Query params: from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ovenID := mux.Vars(r)["ovenId"]
	if ovenID == "" {
		handlers.RespondBadRequest(w, msgInvalidOvenID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(ovenID, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /ovens/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOvenSchedule.ErrOvenNotFound):
			h.logger.Warn("GET /ovens/{id}/schedule - Oven not found: oven_id=%s", ovenID)
			handlers.RespondNotFound(w, msgOvenNotFound)

		case errors.Is(err, getOvenSchedule.ErrInvalidWindow):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getOvenSchedule.ErrWindowTooLarge):
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, getOvenSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOvenID)

		default:
			h.logger.Error("GET /ovens/{id}/schedule - Failed to get schedule: oven_id=%s, error=%v", ovenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /ovens/{id}/schedule - Schedule retrieved successfully: oven_id=%s, slots_count=%d",
		ovenID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
