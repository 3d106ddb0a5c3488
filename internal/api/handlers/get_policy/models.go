package get_policy

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

// PolicyResponse действующие правила бронирования
type PolicyResponse struct {
	MaxActiveReservations   int      `json:"maxActiveReservations"`
	MaxSpanDays             int      `json:"maxSpanDays"`
	MinLeadMinutes          int      `json:"minLeadMinutes"`
	CancellationLeadMinutes int      `json:"cancellationLeadMinutes"`
	Timezone                string   `json:"timezone"`
	AdminCancelReasons      []string `json:"adminCancelReasons"`
	LoadedAt                string   `json:"loadedAt"`
}

// FromDomain конвертирует правила в HTTP response
func FromDomain(p domain.ValidationPolicy, loadedAt time.Time) *PolicyResponse {
	return &PolicyResponse{
		MaxActiveReservations:   p.MaxActiveReservationsPerRequester,
		MaxSpanDays:             p.MaxReservationSpanDays,
		MinLeadMinutes:          int(p.MinLeadTime / time.Minute),
		CancellationLeadMinutes: int(p.CancellationLeadTime / time.Minute),
		Timezone:                p.Zone().String(),
		AdminCancelReasons:      domain.AdminCancellationReasons,
		LoadedAt:                loadedAt.UTC().Format(time.RFC3339),
	}
}
