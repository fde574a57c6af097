package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilterState(t *testing.T) {
	state := DefaultFilterState("user-1")
	assert.Equal(t, "user-1", state.UserID)
	assert.Equal(t, 18, state.AgeRange.Min)
	assert.Equal(t, 99, state.AgeRange.Max)
	assert.Equal(t, 100, state.Distance)
}

func TestNormalize_RepairsAgeOrder(t *testing.T) {
	state := FilterState{AgeRange: AgeRange{Min: 40, Max: 25}, Distance: 50}
	state.Normalize()
	assert.LessOrEqual(t, state.AgeRange.Min, state.AgeRange.Max)
	assert.Equal(t, 40, state.AgeRange.Min)
}

func TestNormalize_EnforcesAdultMinimum(t *testing.T) {
	state := FilterState{AgeRange: AgeRange{Min: 0, Max: 30}, Distance: 50}
	state.Normalize()
	assert.Equal(t, 18, state.AgeRange.Min)
	assert.Equal(t, 30, state.AgeRange.Max)
}

func TestNormalize_RepairsDistance(t *testing.T) {
	state := FilterState{AgeRange: AgeRange{Min: 18, Max: 30}, Distance: 0}
	state.Normalize()
	assert.Equal(t, 100, state.Distance)

	state = FilterState{AgeRange: AgeRange{Min: 18, Max: 30}, Distance: -5}
	state.Normalize()
	assert.Equal(t, 100, state.Distance)
}
