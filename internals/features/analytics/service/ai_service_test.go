package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizePerformance(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		alfa int
		want string
	}{
		{"sempurna", 100, 0, CategorySangatBaik},
		{"95 tanpa alfa", 95, 0, CategorySangatBaik},
		{"95 tapi ada alfa", 95, 1, CategoryBaik},
		{"87 satu alfa", 87, 1, CategoryBaik},
		{"87 dua alfa", 87, 2, CategoryCukup},
		{"tepat 70", 70, 5, CategoryCukup},
		{"di bawah 70", 69.9, 3, CategoryPerluPerhatian},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CategorizePerformance(tc.rate, tc.alfa))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(PerformanceFacts{
		Name:           "Budi Santoso",
		Position:       "Staff IT",
		Month:          "2025-06",
		AttendanceRate: 92.5,
		TepatWaktu:     18,
		Terlambat:      1,
		Izin:           1,
		Alfa:           1,
		HighRiskCount:  2,
		FraudFlags:     []string{FlagHighAlfa},
		Trend:          Trend{Direction: TrendNaik, ChangePercent: 4.2},
	})

	assert.Contains(t, prompt, "Budi Santoso")
	assert.Contains(t, prompt, "2025-06")
	assert.Contains(t, prompt, "92.5%")
	assert.Contains(t, prompt, "2 check-in berisiko tinggi")
	assert.Contains(t, prompt, "RISIKO: "+FlagHighAlfa)
	assert.Contains(t, prompt, CategoryBaik)
}

func TestBuildPrompt_TanpaRisikoTinggi(t *testing.T) {
	prompt := BuildPrompt(PerformanceFacts{Name: "Siti", Month: "2025-06", AttendanceRate: 100})
	assert.NotContains(t, prompt, "berisiko tinggi")
	assert.Contains(t, prompt, "Tidak ada indikasi risiko")
}
