package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	recapService "absensiku_backend/internals/features/attendance/recap/service"
	"absensiku_backend/internals/features/attendance/summary/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
	userModel "absensiku_backend/internals/features/users/user/model"
)

func TestSummaryStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		in     recapService.DayStatus
		want   string
		stored bool
	}{
		{"tepat waktu", recapService.DayStatus{Kind: recapService.KindOnTime}, model.SummaryHadir, true},
		{"terlambat", recapService.DayStatus{Kind: recapService.KindLate}, model.SummaryTerlambat, true},
		{"alfa", recapService.DayStatus{Kind: recapService.KindAbsent}, model.SummaryAlfa, true},
		{"sakit", recapService.DayStatus{Kind: recapService.KindLeave, LeaveType: leaveModel.LeaveTypeSakit}, model.SummarySakit, true},
		{"cuti", recapService.DayStatus{Kind: recapService.KindLeave, LeaveType: leaveModel.LeaveTypeCuti}, model.SummaryCuti, true},
		{"izin", recapService.DayStatus{Kind: recapService.KindLeave, LeaveType: leaveModel.LeaveTypeIzin}, model.SummaryIzin, true},
		{"akhir pekan dilewati", recapService.DayStatus{Kind: recapService.KindWeekend}, "", false},
		{"libur dilewati", recapService.DayStatus{Kind: recapService.KindHoliday}, "", false},
		{"belum relevan dilewati", recapService.DayStatus{Kind: recapService.KindNotApplicable}, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SummaryStatusFor(tc.in)
			assert.Equal(t, tc.stored, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Snapshot: karyawan yang sudah punya baris summary pada tanggal itu tidak
// boleh diresolusi ulang — izin yang baru di-approve setelah materialisasi
// tidak mengubah status yang sudah tersimpan.
func TestUsersNeedingSummary_SkipBarisYangSudahAda(t *testing.T) {
	alreadyDone := userModel.UserModel{UserID: uuid.New(), UserName: "Budi"}
	fresh := userModel.UserModel{UserID: uuid.New(), UserName: "Siti"}

	materialized := map[uuid.UUID]struct{}{alreadyDone.UserID: {}}

	got := UsersNeedingSummary([]userModel.UserModel{alreadyDone, fresh}, materialized)
	assert.Len(t, got, 1)
	assert.Equal(t, fresh.UserID, got[0].UserID)

	// run kedua: baris baru saja ditulis untuk keduanya → tidak ada yang ditulis ulang
	materialized[fresh.UserID] = struct{}{}
	assert.Empty(t, UsersNeedingSummary([]userModel.UserModel{alreadyDone, fresh}, materialized))
}
