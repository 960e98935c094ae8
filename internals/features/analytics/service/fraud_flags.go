package service

import (
	"time"

	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
)

// Ambang indikasi pola mencurigakan dalam satu bulan
const (
	monFriLeaveThreshold      = 3
	identicalCheckinThreshold = 5
	highAlfaThreshold         = 5
)

const (
	FlagMonFriPattern     = "Pola izin berulang Senin/Jumat (indikasi long weekend)."
	FlagConsistentCheckin = "Jam check-in sangat konsisten (≥5 hari sama)."
	FlagHighAlfa          = "Jumlah alfa tinggi (≥5). Perlu monitoring."
)

// DetectFraudFlags memeriksa pola mencurigakan pada fakta satu bulan:
// izin yang selalu mulai Senin/Jumat, jam check-in yang terlalu konsisten,
// dan jumlah alfa yang tinggi. Murni, tanpa akses DB.
func DetectFraudFlags(leaves []leaveModel.LeaveRequestModel, logs []checkinModel.AttendanceLogModel, alfa int) []string {
	flags := make([]string, 0, 3)

	monday, friday := 0, 0
	for _, l := range leaves {
		r, ok := l.Range()
		if !ok {
			continue
		}
		switch r.Start.Weekday() {
		case time.Monday:
			monday++
		case time.Friday:
			friday++
		}
	}
	if monday >= monFriLeaveThreshold || friday >= monFriLeaveThreshold {
		flags = append(flags, FlagMonFriPattern)
	}

	byMinute := make(map[string]int, len(logs))
	maxSame := 0
	for _, l := range logs {
		k := l.AttendanceLogCheckInTime.Format("15:04")
		byMinute[k]++
		if byMinute[k] > maxSame {
			maxSame = byMinute[k]
		}
	}
	if maxSame >= identicalCheckinThreshold {
		flags = append(flags, FlagConsistentCheckin)
	}

	if alfa >= highAlfaThreshold {
		flags = append(flags, FlagHighAlfa)
	}

	return flags
}
