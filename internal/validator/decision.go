package validator

// RejectionReason закрытый набор причин отказа
type RejectionReason string

const (
	ReasonNone               RejectionReason = ""
	ReasonMalformedCandidate RejectionReason = "malformed_candidate"
	ReasonInvalidInterval    RejectionReason = "invalid_interval"
	ReasonStartInPast        RejectionReason = "start_in_past"
	ReasonQuotaExceeded      RejectionReason = "quota_exceeded"
	ReasonSpanTooLong        RejectionReason = "span_too_long"
	ReasonResourceConflict   RejectionReason = "resource_conflict"
)

// Decision результат проверки кандидата
type Decision struct {
	Reason RejectionReason
	// ConflictingID заполняется только для ReasonResourceConflict
	ConflictingID string
}

// Accepted returns true if the candidate passed every check
func (d Decision) Accepted() bool {
	return d.Reason == ReasonNone
}

// Outcome returns the metric label for the decision
func (d Decision) Outcome() string {
	if d.Accepted() {
		return "accepted"
	}
	return string(d.Reason)
}

// Err maps a rejection onto its sentinel error, nil when accepted
func (d Decision) Err() error {
	switch d.Reason {
	case ReasonNone:
		return nil
	case ReasonMalformedCandidate:
		return ErrMalformedCandidate
	case ReasonInvalidInterval:
		return ErrInvalidInterval
	case ReasonStartInPast:
		return ErrStartInPast
	case ReasonQuotaExceeded:
		return ErrQuotaExceeded
	case ReasonSpanTooLong:
		return ErrSpanTooLong
	case ReasonResourceConflict:
		return ErrResourceConflict
	}
	return ErrUnknownReason
}

func accept() Decision {
	return Decision{}
}

func reject(reason RejectionReason) Decision {
	return Decision{Reason: reason}
}
