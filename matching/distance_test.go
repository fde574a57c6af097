package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	assert.Equal(t, 111, DistanceKm(0, 0, 0, 1))
	assert.Equal(t, 111, DistanceKm(0, 0, 1, 0))
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0, DistanceKm(0, 0, 0, 0))
	assert.Equal(t, 0, DistanceKm(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestDistanceKm_KnownCities(t *testing.T) {
	// São Paulo -> Rio de Janeiro
	assert.Equal(t, 361, DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729))
	// London -> Paris
	assert.Equal(t, 344, DistanceKm(51.5074, -0.1278, 48.8566, 2.3522))
}

func TestDistanceKm_Symmetry(t *testing.T) {
	points := [][4]float64{
		{-23.5505, -46.6333, -22.9068, -43.1729},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{0, 0, 0, 1},
		{89.9, 10, -89.9, -170},
	}
	for _, p := range points {
		assert.Equal(t, DistanceKm(p[0], p[1], p[2], p[3]), DistanceKm(p[2], p[3], p[0], p[1]))
	}
}

func TestDistanceKm_RoundsToNearest(t *testing.T) {
	// 0.9 degrees of longitude is 100.075 km; must round down to 100, not
	// truncate past it.
	assert.Equal(t, 100, DistanceKm(0, 0, 0, 0.9))
}
