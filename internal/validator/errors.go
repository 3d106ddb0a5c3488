package validator

import "errors"

var (
	ErrMalformedCandidate = errors.New("validator: requester and resource are required")
	ErrInvalidInterval    = errors.New("validator: start must be before end")
	ErrStartInPast        = errors.New("validator: start is in the past")
	ErrQuotaExceeded      = errors.New("validator: active reservations limit reached")
	ErrSpanTooLong        = errors.New("validator: reservation spans too many days")
	ErrResourceConflict   = errors.New("validator: oven is already reserved for this time")
	ErrUnknownReason      = errors.New("validator: unknown rejection reason")
)
