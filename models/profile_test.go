package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestHasPhoto(t *testing.T) {
	assert.False(t, Profile{}.HasPhoto())
	assert.False(t, Profile{Photos: []*string{nil, nil}}.HasPhoto())
	assert.False(t, Profile{Photos: []*string{strPtr("")}}.HasPhoto())
	assert.True(t, Profile{Photos: []*string{nil, strPtr("a.jpg")}}.HasPhoto())
}

func TestSeeks(t *testing.T) {
	p := Profile{Seeking: []string{GenderMulher}}
	assert.True(t, p.Seeks(GenderMulher))
	assert.False(t, p.Seeks(GenderHomem))
	assert.False(t, Profile{}.Seeks(GenderMulher))
}

func TestBoostActiveAt(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	active := Profile{BoostIsActive: true, BoostExpiresAt: now.Add(time.Minute).Format(time.RFC3339)}
	assert.True(t, active.BoostActiveAt(now))

	expired := Profile{BoostIsActive: true, BoostExpiresAt: now.Add(-time.Minute).Format(time.RFC3339)}
	assert.False(t, expired.BoostActiveAt(now))

	inactive := Profile{BoostIsActive: false, BoostExpiresAt: now.Add(time.Minute).Format(time.RFC3339)}
	assert.False(t, inactive.BoostActiveAt(now))

	garbage := Profile{BoostIsActive: true, BoostExpiresAt: "not-a-timestamp"}
	assert.False(t, garbage.BoostActiveAt(now))
}

func TestHasLocation(t *testing.T) {
	lat, lon := 1.0, 2.0
	assert.True(t, Profile{Latitude: &lat, Longitude: &lon}.HasLocation())
	assert.False(t, Profile{Latitude: &lat}.HasLocation())
	assert.False(t, Profile{}.HasLocation())
}
