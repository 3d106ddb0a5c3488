package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-OvenBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgOvenNotFound       = "печь не найдена"
	msgOvenUnavailable    = "печь недоступна для бронирования"
	msgMalformed          = "не указан пользователь или печь"
	msgInvalidInterval    = "время начала должно быть раньше времени окончания"
	msgStartInPast        = "нельзя забронировать время в прошлом"
	msgSpanTooLong        = "бронирование охватывает слишком много дней"
	msgQuotaExceeded      = "превышено число активных бронирований"
	msgConflict           = "печь уже забронирована на это время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrResourceConflict):
			h.logger.Warn("POST /bookings - Conflict: user_id=%s, oven_id=%s: %v", userID, req.OvenID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createBooking.ErrQuotaExceeded):
			h.logger.Warn("POST /bookings - Quota exceeded: user_id=%s", userID)
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, createBooking.ErrOvenNotFound):
			h.logger.Warn("POST /bookings - Oven not found: oven_id=%s", req.OvenID)
			handlers.RespondNotFound(w, msgOvenNotFound)

		case errors.Is(err, createBooking.ErrOvenUnavailable):
			h.logger.Warn("POST /bookings - Oven unavailable: oven_id=%s", req.OvenID)
			handlers.RespondConflict(w, msgOvenUnavailable)

		case errors.Is(err, createBooking.ErrMalformedCandidate):
			handlers.RespondBadRequest(w, msgMalformed)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrStartInPast):
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrSpanTooLong):
			handlers.RespondBadRequest(w, msgSpanTooLong)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, oven_id=%s, error=%v",
				userID, req.OvenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, oven_id=%s",
		result.ID, userID, result.OvenID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
