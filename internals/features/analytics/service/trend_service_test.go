package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTrend(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		wantDirection     string
	}{
		{"naik", 90, 75, TrendNaik},
		{"turun", 60, 80, TrendTurun},
		{"sama persis", 80, 80, TrendStabil},
		{"selisih sangat kecil dianggap stabil", 80.1, 80, TrendStabil},
		{"dari nol ke positif", 50, 0, TrendNaik},
		{"nol terus", 0, 0, TrendStabil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTrend(tc.current, tc.previous)
			assert.Equal(t, tc.wantDirection, got.Direction)
		})
	}
}

func TestComputeTrend_BesarPerubahan(t *testing.T) {
	got := ComputeTrend(90, 75)
	assert.InDelta(t, 20.0, got.ChangePercent, 0.001)

	got = ComputeTrend(50, 0)
	assert.Equal(t, 100.0, got.ChangePercent)
}
