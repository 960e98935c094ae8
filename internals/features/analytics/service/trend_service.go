package service

import "math"

const (
	TrendNaik   = "naik"
	TrendTurun  = "turun"
	TrendStabil = "stabil"
)

type Trend struct {
	Direction     string  `json:"direction"`
	ChangePercent float64 `json:"change_percent"`
}

// ComputeTrend membandingkan persentase kehadiran bulan berjalan dengan bulan
// sebelumnya. Basis pembagi adalah nilai bulan sebelumnya; dari nol ke
// berapapun dihitung kenaikan 100%.
func ComputeTrend(current, previous float64) Trend {
	if previous == 0 {
		if current == 0 {
			return Trend{Direction: TrendStabil, ChangePercent: 0}
		}
		return Trend{Direction: TrendNaik, ChangePercent: 100}
	}

	change := (current - previous) / previous * 100
	switch {
	case math.Abs(change) < 0.5:
		return Trend{Direction: TrendStabil, ChangePercent: change}
	case change > 0:
		return Trend{Direction: TrendNaik, ChangePercent: change}
	default:
		return Trend{Direction: TrendTurun, ChangePercent: change}
	}
}
