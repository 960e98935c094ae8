package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
	userModel "absensiku_backend/internals/features/users/user/model"
)

// Maret 2024: tgl 10 = Minggu; 11-15 dan 18-21 hari kerja; 16-17 akhir pekan.
func recapInput() ResolveInput {
	in := ResolveInput{
		JoinDate: d(2024, time.March, 10),
		Today:    d(2024, time.December, 31),
		Logs: map[string]checkinModel.AttendanceLogModel{
			"2024-03-11": logWithStatus(d(2024, time.March, 11), checkinModel.StatusTepatWaktu),
			"2024-03-12": logWithStatus(d(2024, time.March, 12), checkinModel.StatusTerlambat),
		},
		Leaves: []leaveModel.LeaveRequestModel{
			approvedLeave("2024-03-14", leaveModel.LeaveTypeSakit),
			approvedLeave("2024-03-15", leaveModel.LeaveTypeCuti),
		},
		Holidays: map[string]string{"2024-03-13": "Hari Raya Nyepi"},
	}
	return in
}

func TestAggregateOne_ProfilKehadiran(t *testing.T) {
	buckets, row := AggregateOne(recapInput(), d(2024, time.March, 10), d(2024, time.March, 21), ProfileAttendance)

	assert.Equal(t, 1, buckets[BucketTepatWaktu])
	assert.Equal(t, 1, buckets[BucketTerlambat])
	assert.Equal(t, 2, buckets[BucketIzin], "sakit+cuti digabung pada profil kehadiran")
	assert.Equal(t, 4, buckets[BucketAlfa])

	// total bucket harus sama dengan hari kerja jendela efektif
	sum := 0
	for _, v := range buckets {
		sum += v
	}
	assert.Equal(t, row.WorkingDays, sum)
	assert.Equal(t, 8, row.WorkingDays)
	assert.Equal(t, "2024-03-10", row.WindowStart)
	assert.Equal(t, "2024-03-21", row.WindowEnd)
}

func TestAggregateOne_ProfilIzinAbsen(t *testing.T) {
	buckets, _ := AggregateOne(recapInput(), d(2024, time.March, 10), d(2024, time.March, 21), ProfileLeave)

	assert.Equal(t, 0, buckets[BucketIzin])
	assert.Equal(t, 1, buckets[BucketSakit])
	assert.Equal(t, 1, buckets[BucketCuti])
	assert.Equal(t, 4, buckets[BucketAlfa])
	// hari hadir tidak ikut dihitung sama sekali
	_, ada := buckets[BucketTepatWaktu]
	assert.False(t, ada)
}

func TestAggregateOne_ProfilTotalHariIzin(t *testing.T) {
	buckets, _ := AggregateOne(recapInput(), d(2024, time.March, 10), d(2024, time.March, 21), ProfileLeaveDays)

	assert.Equal(t, 1, buckets[BucketSakit])
	assert.Equal(t, 1, buckets[BucketCuti])
	assert.Equal(t, 0, buckets[BucketIzin])
}

func TestAggregateOne_TotalHariIzinKecualikanAkhirPekanDanLibur(t *testing.T) {
	in := recapInput()
	// Jumat 15 s.d. Senin 18: Sabtu-Minggu tidak dikonsumsi
	in.Leaves = []leaveModel.LeaveRequestModel{
		approvedLeave("2024-03-15 - 2024-03-18", leaveModel.LeaveTypeCuti),
	}

	buckets, _ := AggregateOne(in, d(2024, time.March, 10), d(2024, time.March, 21), ProfileLeaveDays)
	assert.Equal(t, 2, buckets[BucketCuti])

	// tambah libur di Senin 18 → tinggal 1 hari kerja terkonsumsi
	in.Holidays["2024-03-18"] = "Cuti Bersama"
	buckets, _ = AggregateOne(in, d(2024, time.March, 10), d(2024, time.March, 21), ProfileLeaveDays)
	assert.Equal(t, 1, buckets[BucketCuti])
}

func TestAggregateOne_JendelaTerpotongJoinDate(t *testing.T) {
	in := ResolveInput{
		JoinDate: d(2024, time.March, 10),
		Today:    d(2024, time.March, 21),
		Logs:     map[string]checkinModel.AttendanceLogModel{},
		Holidays: map[string]string{},
	}

	buckets, row := AggregateOne(in, d(2024, time.January, 1), d(2024, time.March, 31), ProfileAttendance)

	// semua hari sebelum join dibuang; sisa hari kerja tanpa log → Alfa semua
	assert.Equal(t, "2024-03-10", row.WindowStart)
	assert.Equal(t, "2024-03-21", row.WindowEnd)
	assert.Equal(t, 9, buckets[BucketAlfa])
	assert.Equal(t, 0, buckets[BucketTepatWaktu])
	assert.Equal(t, row.WorkingDays, buckets[BucketAlfa])
}

// Rekap hanya mencakup karyawan aktif ber-role employee; akun admin dan user
// nonaktif tersaring di SQL sebelum resolusi harian berjalan.
func TestEmployeeScope_HanyaKaryawanAktif(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=app dbname=app",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	stmt := employeeScope(db.Model(&userModel.UserModel{})).Find(&[]userModel.UserModel{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "user_role")
	assert.Contains(t, sql, "user_status")
	assert.Contains(t, stmt.Vars, constants.RoleEmployee)
	assert.Contains(t, stmt.Vars, constants.StatusActive)
}
