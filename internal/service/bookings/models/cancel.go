package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-OvenBooking/internal/domain"
)

var (
	// ErrReasonRequired администратор должен указать причину отмены
	ErrReasonRequired = errors.New("cancellation reason is required")

	// ErrUnknownReason причина не из допустимого списка
	ErrUnknownReason = errors.New("unknown cancellation reason")

	// ErrDetailsRequired для "Personal Request" нужны подробности
	ErrDetailsRequired = errors.New("details are required for a personal request")

	// ErrReasonTooLong причина длиннее допустимого
	ErrReasonTooLong = errors.New("cancellation reason is too long")
)

// BuildAdminCancellationReason проверяет причину отмены администратором и собирает итоговую строку
// "Personal Request" сохраняется как "Personal Request: <details>"
func BuildAdminCancellationReason(reason, details string) (string, error) {
	reason = strings.TrimSpace(reason)
	details = strings.TrimSpace(details)

	if reason == "" {
		return "", ErrReasonRequired
	}

	known := false
	for _, r := range domain.AdminCancellationReasons {
		if r == reason {
			known = true
			break
		}
	}
	if !known {
		return "", ErrUnknownReason
	}

	result := reason
	if reason == domain.CancelReasonPersonalRequest {
		if details == "" {
			return "", ErrDetailsRequired
		}
		result = reason + ": " + details
	}

	if utf8.RuneCountInString(result) > domain.MaxCancellationReasonLength {
		return "", ErrReasonTooLong
	}

	return result, nil
}
