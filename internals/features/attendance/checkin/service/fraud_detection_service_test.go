package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/checkin/model"
)

var testOffice = &configs.OfficeLocation{
	Latitude:            -6.2000000, // Jakarta
	Longitude:           106.8166666,
	AllowedRadiusMeters: 100,
}

func workHour() time.Time {
	return time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

func logAt(t time.Time, lat, lon float64) model.AttendanceLogModel {
	return model.AttendanceLogModel{
		AttendanceLogCheckInTime: t,
		AttendanceLogLatitude:    ptr(lat),
		AttendanceLogLongitude:   ptr(lon),
	}
}

func TestScoreCheckin_DiDalamRadius(t *testing.T) {
	res := ScoreCheckin(FraudInput{
		Latitude:  testOffice.Latitude,
		Longitude: testOffice.Longitude,
		Now:       workHour(),
		Office:    testOffice,
	})
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Notes)
}

func TestScoreCheckin_DiLuarRadius(t *testing.T) {
	// ±1.1 km dari kantor, masih di bawah 50 km
	res := ScoreCheckin(FraudInput{
		Latitude:  testOffice.Latitude + 0.01,
		Longitude: testOffice.Longitude,
		Now:       workHour(),
		Office:    testOffice,
	})
	assert.Equal(t, 50, res.Score)
	assert.Contains(t, res.Note(), "Di luar radius kantor")
}

func TestScoreCheckin_SangatJauh(t *testing.T) {
	// Surabaya, ±660 km dari Jakarta
	res := ScoreCheckin(FraudInput{
		Latitude:  -7.2574719,
		Longitude: 112.7520883,
		Now:       workHour(),
		Office:    testOffice,
	})
	assert.Equal(t, 80, res.Score)
	assert.Contains(t, res.Note(), "sangat jauh")
}

func TestScoreCheckin_ModeDinasLewatiGeofence(t *testing.T) {
	res := ScoreCheckin(FraudInput{
		Latitude:  -7.2574719,
		Longitude: 112.7520883,
		Now:       workHour(),
		OnDuty:    true,
		Office:    testOffice,
	})
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, res.Note(), "Mode WFH/Dinas.")
}

func TestScoreCheckin_KantorTidakDikonfigurasi(t *testing.T) {
	res := ScoreCheckin(FraudInput{
		Latitude:  -7.2574719,
		Longitude: 112.7520883,
		Now:       workHour(),
		Office:    nil,
	})
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, res.Note(), "geofence dilewati")
}

func TestScoreCheckin_GPSStatisTigaHari(t *testing.T) {
	lat, lon := testOffice.Latitude, testOffice.Longitude
	now := workHour()
	history := []model.AttendanceLogModel{
		logAt(now.AddDate(0, 0, -1), lat, lon),
		logAt(now.AddDate(0, 0, -2), lat, lon),
		logAt(now.AddDate(0, 0, -3), lat, lon),
	}

	res := ScoreCheckin(FraudInput{
		Latitude: lat, Longitude: lon,
		Now: now, Office: testOffice, History: history,
	})
	assert.GreaterOrEqual(t, res.Score, 80)
	assert.Contains(t, res.Note(), "GPS statis")
}

func TestScoreCheckin_GPSStatisBerhentiDiEntriPertamaYangBeda(t *testing.T) {
	lat, lon := testOffice.Latitude, testOffice.Longitude
	now := workHour()
	history := []model.AttendanceLogModel{
		logAt(now.AddDate(0, 0, -1), lat+0.001, lon), // beda → stop
		logAt(now.AddDate(0, 0, -2), lat, lon),
		logAt(now.AddDate(0, 0, -3), lat, lon),
	}

	res := ScoreCheckin(FraudInput{
		Latitude: lat, Longitude: lon,
		Now: now, Office: testOffice, History: history,
	})
	assert.Equal(t, 0, res.Score)
}

func TestScoreCheckin_PerbedaanDiDesimalKeenamTetapDihitungBeda(t *testing.T) {
	lat, lon := testOffice.Latitude, testOffice.Longitude
	now := workHour()
	history := []model.AttendanceLogModel{
		logAt(now.AddDate(0, 0, -1), lat+0.000001, lon),
		logAt(now.AddDate(0, 0, -2), lat, lon),
		logAt(now.AddDate(0, 0, -3), lat, lon),
	}

	res := ScoreCheckin(FraudInput{
		Latitude: lat, Longitude: lon,
		Now: now, Office: testOffice, History: history,
	})
	assert.Equal(t, 0, res.Score)
}

func TestScoreCheckin_Teleportasi(t *testing.T) {
	now := workHour()
	// Log sebelumnya hari yang sama, 1 menit lalu, ±11 km jauhnya
	history := []model.AttendanceLogModel{
		logAt(now.Add(-1*time.Minute), testOffice.Latitude+0.1, testOffice.Longitude),
	}

	res := ScoreCheckin(FraudInput{
		Latitude:  testOffice.Latitude,
		Longitude: testOffice.Longitude,
		Now:       now,
		Office:    testOffice,
		History:   history,
	})
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, res.Note(), "Perpindahan tidak wajar")
}

func TestScoreCheckin_TeleportasiHariBerbedaTidakKena(t *testing.T) {
	now := workHour()
	history := []model.AttendanceLogModel{
		logAt(now.AddDate(0, 0, -1), testOffice.Latitude+0.1, testOffice.Longitude),
	}

	res := ScoreCheckin(FraudInput{
		Latitude:  testOffice.Latitude,
		Longitude: testOffice.Longitude,
		Now:       now,
		Office:    testOffice,
		History:   history,
	})
	assert.Equal(t, 0, res.Score)
}

func TestScoreCheckin_JamTidakWajar(t *testing.T) {
	res := ScoreCheckin(FraudInput{
		Latitude:  testOffice.Latitude,
		Longitude: testOffice.Longitude,
		Now:       time.Date(2025, time.March, 10, 3, 0, 0, 0, time.UTC),
		Office:    testOffice,
	})
	assert.Equal(t, 20, res.Score)
	assert.Contains(t, res.Note(), "jam tidak wajar")
}

func TestScoreCheckin_SkorDiClampKe100(t *testing.T) {
	now := time.Date(2025, time.March, 10, 4, 0, 0, 0, time.UTC)
	// Jauh dari kantor + teleportasi + jam tidak wajar → mentah 200, clamp 100
	history := []model.AttendanceLogModel{
		logAt(now.Add(-30*time.Second), testOffice.Latitude, testOffice.Longitude),
	}

	res := ScoreCheckin(FraudInput{
		Latitude:  -7.2574719,
		Longitude: 112.7520883,
		Now:       now,
		Office:    testOffice,
		History:   history,
	})
	assert.Equal(t, 100, res.Score)
	assert.GreaterOrEqual(t, len(res.Notes), 2)
}
