package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
)

func leaveStarting(day string) leaveModel.LeaveRequestModel {
	return leaveModel.LeaveRequestModel{
		LeaveRequestDuration: day,
		LeaveRequestType:     leaveModel.LeaveTypeIzin,
		LeaveRequestStatus:   leaveModel.LeaveStatusApproved,
	}
}

func checkinAt(day string, hour, minute int) checkinModel.AttendanceLogModel {
	d, _ := time.Parse("2006-01-02", day)
	return checkinModel.AttendanceLogModel{
		AttendanceLogCheckInTime: time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC),
	}
}

func TestDetectFraudFlags_PolaSeninJumat(t *testing.T) {
	// Juni 2025: tgl 2, 9, 16 semuanya Senin
	leaves := []leaveModel.LeaveRequestModel{
		leaveStarting("2025-06-02"),
		leaveStarting("2025-06-09"),
		leaveStarting("2025-06-16"),
	}
	flags := DetectFraudFlags(leaves, nil, 0)
	assert.Contains(t, flags, FlagMonFriPattern)

	// dua Senin saja belum jadi pola
	flags = DetectFraudFlags(leaves[:2], nil, 0)
	assert.NotContains(t, flags, FlagMonFriPattern)
}

func TestDetectFraudFlags_JamCheckinSeragam(t *testing.T) {
	logs := []checkinModel.AttendanceLogModel{
		checkinAt("2025-06-02", 8, 1),
		checkinAt("2025-06-03", 8, 1),
		checkinAt("2025-06-04", 8, 1),
		checkinAt("2025-06-05", 8, 1),
		checkinAt("2025-06-06", 8, 1),
	}
	assert.Contains(t, DetectFraudFlags(nil, logs, 0), FlagConsistentCheckin)

	// empat hari sama masih wajar
	assert.NotContains(t, DetectFraudFlags(nil, logs[:4], 0), FlagConsistentCheckin)
}

func TestDetectFraudFlags_AlfaTinggi(t *testing.T) {
	assert.Contains(t, DetectFraudFlags(nil, nil, 5), FlagHighAlfa)
	assert.NotContains(t, DetectFraudFlags(nil, nil, 4), FlagHighAlfa)
}

func TestDetectFraudFlags_Bersih(t *testing.T) {
	assert.Empty(t, DetectFraudFlags(nil, nil, 0))

	// durasi rusak tidak dihitung sebagai pola
	broken := []leaveModel.LeaveRequestModel{
		{LeaveRequestDuration: "kapan-kapan"},
		{LeaveRequestDuration: "kapan-kapan"},
		{LeaveRequestDuration: "kapan-kapan"},
	}
	assert.Empty(t, DetectFraudFlags(broken, nil, 0))
}
