package appointment

import (
	"testing"
	"time"

	"codabs/models"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.Local)
}

func booked(times ...time.Time) []models.Appointment {
	appts := make([]models.Appointment, 0, len(times))
	for _, t := range times {
		appts = append(appts, models.Appointment{Date: t})
	}
	return appts
}

func TestEvaluateAdmission_EmptyDay(t *testing.T) {
	decision := EvaluateAdmission(at(10, 0), nil)
	assert.True(t, decision.Admit)
	assert.Empty(t, decision.Reason)
}

func TestEvaluateAdmission_CapacityReached(t *testing.T) {
	sameDay := booked(at(8, 0), at(11, 0), at(14, 0))

	decision := EvaluateAdmission(at(17, 0), sameDay)
	assert.False(t, decision.Admit)
	assert.Equal(t, CapacityReason, decision.Reason)
}

func TestEvaluateAdmission_CapacityBeforeSpacing(t *testing.T) {
	// The requested time also violates spacing; the capacity reason must win.
	sameDay := booked(at(8, 0), at(11, 0), at(14, 0))

	decision := EvaluateAdmission(at(14, 30), sameDay)
	assert.False(t, decision.Admit)
	assert.Equal(t, CapacityReason, decision.Reason)
}

func TestEvaluateAdmission_TooClose(t *testing.T) {
	sameDay := booked(at(10, 0))

	for _, requested := range []time.Time{
		at(11, 59), // 1h59m after
		at(8, 1),   // 1h59m before
		at(10, 0),  // same instant
		at(10, 1),
	} {
		decision := EvaluateAdmission(requested, sameDay)
		assert.False(t, decision.Admit, "requested %s", requested)
		assert.Equal(t, SpacingReason, decision.Reason)
	}
}

func TestEvaluateAdmission_ExactGapAdmitted(t *testing.T) {
	sameDay := booked(at(10, 0))

	assert.True(t, EvaluateAdmission(at(12, 0), sameDay).Admit)
	assert.True(t, EvaluateAdmission(at(8, 0), sameDay).Admit)
}

func TestEvaluateAdmission_GapCheckedAgainstAll(t *testing.T) {
	sameDay := booked(at(8, 0), at(15, 0))

	// Fits against 08:00 but not against 15:00.
	decision := EvaluateAdmission(at(13, 30), sameDay)
	assert.False(t, decision.Admit)
	assert.Equal(t, SpacingReason, decision.Reason)

	// 11:30 is 3h30m from 08:00 and 3h30m from 15:00.
	assert.True(t, EvaluateAdmission(at(11, 30), sameDay).Admit)
}

func TestEvaluateAdmission_Idempotent(t *testing.T) {
	sameDay := booked(at(9, 0), at(12, 0))
	requested := at(15, 0)

	first := EvaluateAdmission(requested, sameDay)
	second := EvaluateAdmission(requested, sameDay)
	assert.Equal(t, first, second)
	assert.True(t, first.Admit)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(at(13, 45))

	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, start.Add(24*time.Hour), end)

	// Midnight itself belongs to the day it starts.
	s2, _ := DayBounds(start)
	assert.Equal(t, start, s2)
}
