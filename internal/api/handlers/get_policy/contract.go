package get_policy

import (
	"time"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

type PolicySource interface {
	Current() domain.ValidationPolicy
	LoadedAt() time.Time
}
