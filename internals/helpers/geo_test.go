package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Monas (Jakarta) → Tugu Pahlawan (Surabaya) ±660 km
	dist := HaversineKm(-6.1753924, 106.8271528, -7.2458361, 112.7378078)
	assert.InDelta(t, 660, dist, 20)

	// titik yang sama
	assert.Equal(t, 0.0, HaversineKm(-6.2, 106.8, -6.2, 106.8))

	// simetris
	a := HaversineKm(-6.2, 106.8, -7.25, 112.75)
	b := HaversineKm(-7.25, 112.75, -6.2, 106.8)
	assert.InDelta(t, a, b, 1e-9)
}
