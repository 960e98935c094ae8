package service

import (
	"time"

	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
)

type StatusKind string

const (
	KindOnTime        StatusKind = "on_time"
	KindLate          StatusKind = "late"
	KindHoliday       StatusKind = "holiday"
	KindWeekend       StatusKind = "weekend"
	KindLeave         StatusKind = "leave"
	KindAbsent        StatusKind = "absent" // Alfa
	KindNotApplicable StatusKind = "not_applicable"
)

// DayStatus adalah hasil resolusi satu hari untuk satu karyawan.
type DayStatus struct {
	Kind      StatusKind           `json:"kind"`
	LeaveType leaveModel.LeaveType `json:"leave_type,omitempty"` // terisi hanya untuk KindLeave
	Label     string               `json:"label,omitempty"`      // nama libur untuk KindHoliday
}

// ResolveInput adalah seluruh fakta yang dibutuhkan resolusi; Today disuntik
// supaya hasil deterministik dan bisa diuji paralel.
type ResolveInput struct {
	JoinDate time.Time
	Today    time.Time

	// Log absensi per tanggal "2006-01-02"
	Logs map[string]checkinModel.AttendanceLogModel

	// Hanya request approved; urutan koleksi menentukan pemenang saat
	// beberapa cuti menimpa hari yang sama (first match).
	Leaves []leaveModel.LeaveRequestModel

	// Tanggal libur "2006-01-02" → nama libur
	Holidays map[string]string
}

func dateStr(t time.Time) string { return t.Format("2006-01-02") }

func sameOrAfterDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad >= bd
}

func afterDate(a, b time.Time) bool {
	return sameOrAfterDate(a, b) && dateStr(a) != dateStr(b)
}

// Resolve menentukan status satu hari. Prioritas:
// sebelum join → log eksplisit → libur → akhir pekan → cuti approved
// (first match) → hari depan → Alfa. Fungsi murni: input sama, hasil sama.
func Resolve(in ResolveInput, day time.Time) DayStatus {
	if !sameOrAfterDate(day, in.JoinDate) {
		return DayStatus{Kind: KindNotApplicable}
	}

	if log, ok := in.Logs[dateStr(day)]; ok {
		if log.AttendanceLogStatus == checkinModel.StatusTerlambat {
			return DayStatus{Kind: KindLate}
		}
		return DayStatus{Kind: KindOnTime}
	}

	if label, ok := in.Holidays[dateStr(day)]; ok {
		return DayStatus{Kind: KindHoliday, Label: label}
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return DayStatus{Kind: KindWeekend}
	}

	for _, leave := range in.Leaves {
		r, ok := leave.Range()
		if !ok {
			continue // durasi rusak: tanpa cakupan, request lain tetap dicek
		}
		if r.Contains(day) {
			return DayStatus{Kind: KindLeave, LeaveType: leave.LeaveRequestType}
		}
	}

	if afterDate(day, in.Today) {
		return DayStatus{Kind: KindNotApplicable}
	}

	return DayStatus{Kind: KindAbsent}
}

// EachDay menjalankan Resolve untuk tiap hari di jendela efektif
// [max(periodStart, JoinDate), min(periodEnd, Today)], inklusif kedua ujung.
// Hari di luar jendela dilewati begitu saja (tidak dikirim sebagai
// NotApplicable) supaya penjumlahan bucket tidak tercemar.
func EachDay(in ResolveInput, periodStart, periodEnd time.Time, fn func(day time.Time, status DayStatus)) {
	start := periodStart
	if !sameOrAfterDate(start, in.JoinDate) {
		start = in.JoinDate
	}
	end := periodEnd
	if afterDate(end, in.Today) {
		end = in.Today
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d, Resolve(in, d))
	}
}
