package update_user_role

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/service/users"
	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRole        = "роль должна быть admin или user"
	msgForbidden          = "доступ запрещен"
	msgSelfDemotion       = "нельзя снять роль администратора с самого себя"
	msgNotFound           = "пользователь не найден"
)

// UpdateRoleRequest HTTP request model
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{userId}/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id}/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetRole(r.Context(), &models.SetRoleRequest{
		UserID:       userID,
		TargetUserID: targetUserID,
		Role:         req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("PATCH /users/{id}/role - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, users.ErrSelfDemotion):
			handlers.RespondConflict(w, msgSelfDemotion)

		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /users/{id}/role - Failed to set role: target=%s, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id}/role - Role updated: target=%s, role=%s, by=%s", targetUserID, result.Role, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
