package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func logWithStatus(day time.Time, status string) checkinModel.AttendanceLogModel {
	return checkinModel.AttendanceLogModel{
		AttendanceLogDay:         day,
		AttendanceLogCheckInTime: day.Add(8 * time.Hour),
		AttendanceLogStatus:      status,
	}
}

func approvedLeave(duration string, t leaveModel.LeaveType) leaveModel.LeaveRequestModel {
	return leaveModel.LeaveRequestModel{
		LeaveRequestDuration: duration,
		LeaveRequestType:     t,
		LeaveRequestStatus:   leaveModel.LeaveStatusApproved,
	}
}

func baseInput() ResolveInput {
	return ResolveInput{
		JoinDate: d(2024, time.March, 10),
		Today:    d(2025, time.June, 30),
		Logs:     map[string]checkinModel.AttendanceLogModel{},
		Holidays: map[string]string{},
	}
}

func TestResolve_SebelumTanggalBergabung(t *testing.T) {
	in := baseInput()
	// apapun datanya, hari sebelum join tidak pernah dihitung
	in.Logs["2024-03-05"] = logWithStatus(d(2024, time.March, 5), checkinModel.StatusTepatWaktu)
	in.Holidays["2024-03-05"] = "Libur"

	got := Resolve(in, d(2024, time.March, 5))
	assert.Equal(t, KindNotApplicable, got.Kind)
}

func TestResolve_LogEksplisitMenangAtasLibur(t *testing.T) {
	in := baseInput()
	day := d(2025, time.January, 1)
	in.Holidays["2025-01-01"] = "Tahun Baru"
	in.Logs["2025-01-01"] = logWithStatus(day, checkinModel.StatusTerlambat)

	got := Resolve(in, day)
	assert.Equal(t, KindLate, got.Kind)

	// tanpa log, hari yang sama jatuh ke libur
	delete(in.Logs, "2025-01-01")
	got = Resolve(in, day)
	assert.Equal(t, KindHoliday, got.Kind)
	assert.Equal(t, "Tahun Baru", got.Label)
}

func TestResolve_AkhirPekan(t *testing.T) {
	in := baseInput()
	sabtu := d(2025, time.June, 7)
	minggu := d(2025, time.June, 8)

	assert.Equal(t, KindWeekend, Resolve(in, sabtu).Kind)
	assert.Equal(t, KindWeekend, Resolve(in, minggu).Kind)
}

func TestResolve_CutiSatuHari(t *testing.T) {
	in := baseInput()
	in.Leaves = []leaveModel.LeaveRequestModel{
		approvedLeave("2025-01-03", leaveModel.LeaveTypeSakit),
	}

	got := Resolve(in, d(2025, time.January, 3))
	assert.Equal(t, KindLeave, got.Kind)
	assert.Equal(t, leaveModel.LeaveTypeSakit, got.LeaveType)
}

func TestResolve_CutiTumpangTindihMenangYangPertama(t *testing.T) {
	in := baseInput()
	in.Leaves = []leaveModel.LeaveRequestModel{
		approvedLeave("2025-02-10 - 2025-02-14", leaveModel.LeaveTypeCuti),
		approvedLeave("2025-02-12", leaveModel.LeaveTypeSakit),
	}

	got := Resolve(in, d(2025, time.February, 12))
	assert.Equal(t, leaveModel.LeaveTypeCuti, got.LeaveType, "urutan koleksi menentukan pemenang")
}

func TestResolve_DurasiRusakTidakMenggagalkanRequestLain(t *testing.T) {
	in := baseInput()
	in.Leaves = []leaveModel.LeaveRequestModel{
		approvedLeave("durasi kacau", leaveModel.LeaveTypeCuti),
		approvedLeave("2025-02-12", leaveModel.LeaveTypeSakit),
	}

	got := Resolve(in, d(2025, time.February, 12))
	assert.Equal(t, KindLeave, got.Kind)
	assert.Equal(t, leaveModel.LeaveTypeSakit, got.LeaveType)
}

func TestResolve_HariDepanDanAlfa(t *testing.T) {
	in := baseInput() // Today = 2025-06-30 (Senin)

	assert.Equal(t, KindNotApplicable, Resolve(in, d(2025, time.July, 1)).Kind)
	// hari kerja lampau tanpa log, libur, atau cuti → Alfa
	assert.Equal(t, KindAbsent, Resolve(in, d(2025, time.June, 23)).Kind)
	// hari ini sendiri masih bisa Alfa (bukan hari depan)
	assert.Equal(t, KindAbsent, Resolve(in, d(2025, time.June, 30)).Kind)
}

func TestResolve_Deterministik(t *testing.T) {
	in := baseInput()
	in.Leaves = []leaveModel.LeaveRequestModel{
		approvedLeave("2025-02-10 - 2025-02-14", leaveModel.LeaveTypeCuti),
	}
	day := d(2025, time.February, 12)

	first := Resolve(in, day)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(in, day))
	}
}

func TestEachDay_JendelaEfektifTerpotong(t *testing.T) {
	in := baseInput() // join 2024-03-10, today 2025-06-30

	var days []string
	EachDay(in, d(2024, time.January, 1), d(2024, time.March, 12), func(day time.Time, _ DayStatus) {
		days = append(days, day.Format("2006-01-02"))
	})

	// hari sebelum join dihilangkan, bukan dikirim sebagai NotApplicable
	assert.Equal(t, []string{"2024-03-10", "2024-03-11", "2024-03-12"}, days)
}

func TestEachDay_UjungAtasTerpotongHariIni(t *testing.T) {
	in := baseInput()
	in.Today = d(2025, time.June, 3)

	var last string
	count := 0
	EachDay(in, d(2025, time.June, 1), d(2025, time.June, 30), func(day time.Time, _ DayStatus) {
		last = day.Format("2006-01-02")
		count++
	})

	assert.Equal(t, "2025-06-03", last)
	assert.Equal(t, 3, count)
}

func TestEachDay_JendelaKosong(t *testing.T) {
	in := baseInput()

	called := false
	EachDay(in, d(2023, time.January, 1), d(2023, time.December, 31), func(time.Time, DayStatus) {
		called = true
	})
	assert.False(t, called, "periode sepenuhnya sebelum join tidak menghasilkan apa pun")
}
