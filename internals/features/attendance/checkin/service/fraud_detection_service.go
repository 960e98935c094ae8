package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/checkin/model"
	helper "absensiku_backend/internals/helpers"
)

const (
	maxRiskScore = 100

	veryFarDistanceKm      = 50.0
	teleportDistanceKm     = 5.0
	teleportWindow         = 2 * time.Minute
	staticLocationRequired = 3
)

// FraudInput membawa semua konteks penilaian; Now, Office, dan History
// disuntik dari luar supaya service ini murni dan mudah diuji.
type FraudInput struct {
	Latitude  float64
	Longitude float64
	Now       time.Time
	OnDuty    bool
	Office    *configs.OfficeLocation

	// Log check-in sebelumnya, urut terbaru dulu
	History []model.AttendanceLogModel
}

type FraudResult struct {
	Score int
	Notes []string
}

func (r FraudResult) Note() string { return strings.Join(r.Notes, " ") }

// ScoreCheckin menilai satu event check-in dengan aturan aditif.
// Skor akhir di-clamp ke [0, 100]; hasilnya hanya disimpan sebagai
// bahan review admin, tidak pernah memblokir check-in.
func ScoreCheckin(in FraudInput) FraudResult {
	var res FraudResult

	res.apply(scoreGeofence(in))
	res.apply(scoreStaticLocation(in))
	res.apply(scoreTeleportation(in))
	res.apply(scoreOddHour(in))

	if res.Score > maxRiskScore {
		res.Score = maxRiskScore
	}
	return res
}

func (r *FraudResult) apply(score int, note string) {
	r.Score += score
	if note != "" {
		r.Notes = append(r.Notes, note)
	}
}

func scoreGeofence(in FraudInput) (int, string) {
	if in.OnDuty {
		// Dinas/WFH disetujui: geofence tidak berlaku
		return 0, "Mode WFH/Dinas."
	}
	if in.Office == nil {
		return 0, "Lokasi kantor belum dikonfigurasi, pemeriksaan geofence dilewati."
	}

	distKm := helper.HaversineKm(in.Latitude, in.Longitude, in.Office.Latitude, in.Office.Longitude)
	if distKm > veryFarDistanceKm {
		return 80, fmt.Sprintf("Lokasi sangat jauh dari kantor (%.1f km).", distKm)
	}
	if distKm*1000 > in.Office.AllowedRadiusMeters {
		return 50, fmt.Sprintf("Di luar radius kantor (%.0f m dari batas %.0f m).", distKm*1000, in.Office.AllowedRadiusMeters)
	}
	return 0, ""
}

// scoreStaticLocation memeriksa 3 check-in terakhir; berhenti pada entri
// pertama yang tidak cocok (gap tidak dilompati).
func scoreStaticLocation(in FraudInput) (int, string) {
	if len(in.History) < staticLocationRequired {
		return 0, ""
	}
	for i := 0; i < staticLocationRequired; i++ {
		prev := in.History[i]
		if prev.AttendanceLogLatitude == nil || prev.AttendanceLogLongitude == nil {
			return 0, ""
		}
		if round6(*prev.AttendanceLogLatitude) != round6(in.Latitude) ||
			round6(*prev.AttendanceLogLongitude) != round6(in.Longitude) {
			return 0, ""
		}
	}
	return 80, "GPS statis: koordinat identik pada 4 hari berturut-turut."
}

func scoreTeleportation(in FraudInput) (int, string) {
	if len(in.History) == 0 {
		return 0, ""
	}
	prev := in.History[0]
	if prev.AttendanceLogLatitude == nil || prev.AttendanceLogLongitude == nil {
		return 0, ""
	}
	if !sameDate(prev.AttendanceLogCheckInTime, in.Now) {
		return 0, ""
	}

	distKm := helper.HaversineKm(in.Latitude, in.Longitude, *prev.AttendanceLogLatitude, *prev.AttendanceLogLongitude)
	elapsed := in.Now.Sub(prev.AttendanceLogCheckInTime)
	if distKm > teleportDistanceKm && elapsed < teleportWindow {
		return 100, fmt.Sprintf("Perpindahan tidak wajar: %.1f km dalam %d detik.", distKm, int(elapsed.Seconds()))
	}
	return 0, ""
}

func scoreOddHour(in FraudInput) (int, string) {
	h := in.Now.Hour()
	if h < 5 || h > 23 {
		return 20, "Check-in pada jam tidak wajar."
	}
	return 0, ""
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
