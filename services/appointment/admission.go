package appointment

import (
	"time"

	"codabs/models"
)

const (
	// MaxPerDay caps how many appointments may exist on one calendar day.
	MaxPerDay = 3
	// MinGap is the minimum separation between any two appointments on a day.
	MinGap = 2 * time.Hour
)

// Rejection reasons returned to callers verbatim.
const (
	CapacityReason = "Only 3 appointments are allowed per day."
	SpacingReason  = "Sorry, we're unable to schedule your appointment at this time. " +
		"Please choose a different time—appointments must be at least 2 hours apart to allow for adequate preparation."
)

// Decision is the outcome of an admission check.
type Decision struct {
	Admit  bool
	Reason string
}

// Admit is the accepting decision.
func Admit() Decision {
	return Decision{Admit: true}
}

// Reject is a refusing decision carrying a user-facing reason.
func Reject(reason string) Decision {
	return Decision{Reason: reason}
}

// DayBounds returns the half-open [midnight, next midnight) interval containing
// t, in server-local time.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return start, start.Add(24 * time.Hour)
}

// EvaluateAdmission decides whether an appointment at the requested time may be
// booked given the appointments already on record for that calendar day. The
// capacity check runs first and short-circuits the spacing check. Gaps are
// compared on raw timestamps, so entries near midnight are measured precisely
// even though the candidate set is scoped to a single day. A gap of exactly
// MinGap is acceptable.
//
// Pure function: callers query sameDay and persist the outcome.
func EvaluateAdmission(requested time.Time, sameDay []models.Appointment) Decision {
	if len(sameDay) >= MaxPerDay {
		return Reject(CapacityReason)
	}

	for _, appt := range sameDay {
		gap := appt.Date.Sub(requested)
		if gap < 0 {
			gap = -gap
		}
		if gap < MinGap {
			return Reject(SpacingReason)
		}
	}

	return Admit()
}
