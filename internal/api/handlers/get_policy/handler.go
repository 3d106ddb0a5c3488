package get_policy

import (
	"net/http"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
)

type Handler struct {
	policies PolicySource
}

func NewHandler(policies PolicySource) *Handler {
	return &Handler{policies: policies}
}

// Handle GET /api/v1/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomain(h.policies.Current(), h.policies.LoadedAt()))
}
