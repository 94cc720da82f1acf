package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyConcern_ResolveIsIdempotent(t *testing.T) {
	concern := SafetyConcern{Status: SafetyOpen}

	concern.Resolve()
	assert.Equal(t, SafetyResolved, concern.Status)

	concern.Resolve()
	assert.Equal(t, SafetyResolved, concern.Status)
}

func TestSafetyConcern_ToggleRoundTrips(t *testing.T) {
	concern := SafetyConcern{Status: SafetyOpen}

	concern.Toggle()
	assert.Equal(t, SafetyResolved, concern.Status)

	concern.Toggle()
	assert.Equal(t, SafetyOpen, concern.Status)
}

func TestValidShiftType(t *testing.T) {
	assert.True(t, ValidShiftType(ShiftMorning))
	assert.True(t, ValidShiftType(ShiftEvening))
	assert.True(t, ValidShiftType(ShiftNight))
	assert.False(t, ValidShiftType("Afternoon"))
	assert.False(t, ValidShiftType(""))
}
