package model

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// LeaveRange adalah rentang cuti ternormalisasi, inklusif di kedua ujung:
// [Start 00:00:00, End 23:59:59].
type LeaveRange struct {
	Start time.Time
	End   time.Time
}

// ParseLeaveDuration menormalkan teks durasi cuti mentah menjadi LeaveRange.
//   - "2025-01-03 - 2025-01-07" → rentang dua tanggal
//   - "2025-01-03"              → cuti satu hari
//
// Teks kosong, token lebih dari dua, atau tanggal yang gagal di-parse
// menghasilkan ok=false: request tersebut tidak memberi cakupan apa pun,
// tanpa pernah menggagalkan pemrosesan request lain.
func ParseLeaveDuration(raw string) (LeaveRange, bool) {
	parts := strings.Split(raw, " - ")

	switch len(parts) {
	case 1:
		day, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
		if err != nil {
			return LeaveRange{}, false
		}
		return newLeaveRange(day, day), true
	case 2:
		start, err1 := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
		end, err2 := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return LeaveRange{}, false
		}
		return newLeaveRange(start, end), true
	default:
		return LeaveRange{}, false
	}
}

func newLeaveRange(start, end time.Time) LeaveRange {
	return LeaveRange{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC),
	}
}

// Contains menguji keanggotaan hari (perbandingan per tanggal kalender,
// aman terhadap perbedaan lokasi/timezone input).
func (r LeaveRange) Contains(day time.Time) bool {
	k := dateKey(day)
	return k >= dateKey(r.Start) && k <= dateKey(r.End)
}

// Range menormalkan durasi request ini; ok=false berarti tanpa cakupan.
func (m *LeaveRequestModel) Range() (LeaveRange, bool) {
	return ParseLeaveDuration(m.LeaveRequestDuration)
}

func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
