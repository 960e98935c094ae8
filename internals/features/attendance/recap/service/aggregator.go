package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	holidayModel "absensiku_backend/internals/features/holiday/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
	userModel "absensiku_backend/internals/features/users/user/model"
)

type Profile string

const (
	// Rekap kehadiran: tepat_waktu / terlambat / izin (semua tipe digabung) / alfa
	ProfileAttendance Profile = "attendance"
	// Rekap izin-absen: izin / sakit / cuti dipisah + alfa; hari hadir dilewati
	ProfileLeave Profile = "leave"
	// Total hari izin: jumlah hari KERJA yang dikonsumsi tiap request approved
	ProfileLeaveDays Profile = "leave_days"
)

const (
	BucketTepatWaktu = "tepat_waktu"
	BucketTerlambat  = "terlambat"
	BucketIzin       = "izin"
	BucketSakit      = "sakit"
	BucketCuti       = "cuti"
	BucketAlfa       = "alfa"
)

// RecapRow adalah satu baris hasil rekap per karyawan.
type RecapRow struct {
	UserID       uuid.UUID      `json:"user_id"`
	UserName     string         `json:"user_name"`
	UserPosition string         `json:"user_position"`
	Buckets      map[string]int `json:"buckets"`

	// Jendela efektif yang benar-benar dipakai (bisa terpotong joinDate/today)
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`

	// Jumlah hari kerja pada jendela efektif (profil attendance: total bucket
	// selalu sama dengan angka ini)
	WorkingDays int `json:"working_days"`
}

func leaveBucket(t leaveModel.LeaveType) string {
	switch t {
	case leaveModel.LeaveTypeSakit:
		return BucketSakit
	case leaveModel.LeaveTypeCuti:
		return BucketCuti
	default:
		return BucketIzin
	}
}

// AggregateOne menjalankan resolusi harian untuk satu karyawan dan melipat
// hasilnya sesuai profil. Murni: seluruh fakta datang dari in.
func AggregateOne(in ResolveInput, periodStart, periodEnd time.Time, profile Profile) (map[string]int, RecapRow) {
	buckets := emptyBuckets(profile)

	var row RecapRow
	first := true

	EachDay(in, periodStart, periodEnd, func(day time.Time, status DayStatus) {
		if first {
			row.WindowStart = dateStr(day)
			first = false
		}
		row.WindowEnd = dateStr(day)

		switch status.Kind {
		case KindHoliday, KindWeekend, KindNotApplicable:
			return // bukan hari kerja terhitung
		}
		row.WorkingDays++

		switch profile {
		case ProfileAttendance:
			switch status.Kind {
			case KindOnTime:
				buckets[BucketTepatWaktu]++
			case KindLate:
				buckets[BucketTerlambat]++
			case KindLeave:
				buckets[BucketIzin]++ // semua tipe izin digabung
			case KindAbsent:
				buckets[BucketAlfa]++
			}
		case ProfileLeave:
			switch status.Kind {
			case KindLeave:
				buckets[leaveBucket(status.LeaveType)]++
			case KindAbsent:
				buckets[BucketAlfa]++
			}
			// hadir (tepat waktu/terlambat) sengaja dilewati
		}
	})

	if profile == ProfileLeaveDays {
		buckets = leaveDaysBuckets(in, periodStart, periodEnd)
	}

	row.Buckets = buckets
	return buckets, row
}

// leaveDaysBuckets menjumlah hari kerja yang dikonsumsi tiap request approved,
// mengecualikan akhir pekan dan hari libur di dalam rentang request itu
// sendiri, dipotong ke jendela efektif.
func leaveDaysBuckets(in ResolveInput, periodStart, periodEnd time.Time) map[string]int {
	buckets := emptyBuckets(ProfileLeaveDays)

	winStart := periodStart
	if !sameOrAfterDate(winStart, in.JoinDate) {
		winStart = in.JoinDate
	}
	winEnd := periodEnd
	if afterDate(winEnd, in.Today) {
		winEnd = in.Today
	}

	for _, leave := range in.Leaves {
		r, ok := leave.Range()
		if !ok {
			continue
		}
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if !sameOrAfterDate(d, winStart) || afterDate(d, winEnd) {
				continue
			}
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			if _, isHoliday := in.Holidays[dateStr(d)]; isHoliday {
				continue
			}
			buckets[leaveBucket(leave.LeaveRequestType)]++
		}
	}
	return buckets
}

func emptyBuckets(profile Profile) map[string]int {
	switch profile {
	case ProfileAttendance:
		return map[string]int{BucketTepatWaktu: 0, BucketTerlambat: 0, BucketIzin: 0, BucketAlfa: 0}
	case ProfileLeave:
		return map[string]int{BucketIzin: 0, BucketSakit: 0, BucketCuti: 0, BucketAlfa: 0}
	default:
		return map[string]int{BucketIzin: 0, BucketSakit: 0, BucketCuti: 0}
	}
}

// AggregateFilter membatasi karyawan yang direkap SEBELUM resolusi harian
// dijalankan, bukan sesudah.
type AggregateFilter struct {
	// Cocokkan bebas ke nama ATAU posisi (ILIKE %q%)
	Query string
	// Batasi ke user tertentu (kosong = semua user aktif)
	UserIDs []uuid.UUID
}

// Aggregate memuat semua fakta dari DB sekali jalan lalu menjalankan
// AggregateOne per karyawan.
func Aggregate(db *gorm.DB, periodStart, periodEnd time.Time, today time.Time, profile Profile, filter AggregateFilter) ([]RecapRow, error) {
	users, err := loadUsers(db, filter)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []RecapRow{}, nil
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}

	logsByUser, err := loadLogs(db, ids, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	leavesByUser, err := loadApprovedLeaves(db, ids)
	if err != nil {
		return nil, err
	}
	holidays, err := LoadHolidayIndex(db, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	rows := make([]RecapRow, 0, len(users))
	for _, u := range users {
		in := ResolveInput{
			JoinDate: u.JoinDate(),
			Today:    today,
			Logs:     logsByUser[u.UserID],
			Leaves:   leavesByUser[u.UserID],
			Holidays: holidays,
		}
		_, row := AggregateOne(in, periodStart, periodEnd, profile)
		row.UserID = u.UserID
		row.UserName = u.UserName
		row.UserPosition = u.UserPosition
		rows = append(rows, row)
	}
	return rows, nil
}

// employeeScope membatasi rekap ke karyawan aktif; akun admin dan karyawan
// nonaktif tidak ikut direkap (nonaktif hanya akan menumpuk alfa semu).
func employeeScope(tx *gorm.DB) *gorm.DB {
	return tx.
		Where("user_role = ?", constants.RoleEmployee).
		Where("user_status = ?", constants.StatusActive)
}

func loadUsers(db *gorm.DB, filter AggregateFilter) ([]userModel.UserModel, error) {
	tx := employeeScope(db.Model(&userModel.UserModel{})).Order("user_name ASC")
	if len(filter.UserIDs) > 0 {
		tx = tx.Where("user_id IN ?", filter.UserIDs)
	}
	if q := filter.Query; q != "" {
		pattern := fmt.Sprintf("%%%s%%", q)
		tx = tx.Where("user_name ILIKE ? OR user_position ILIKE ?", pattern, pattern)
	}

	var users []userModel.UserModel
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func loadLogs(db *gorm.DB, userIDs []uuid.UUID, start, end time.Time) (map[uuid.UUID]map[string]checkinModel.AttendanceLogModel, error) {
	var logs []checkinModel.AttendanceLogModel
	if err := db.
		Where("attendance_log_user_id IN ?", userIDs).
		Where("attendance_log_day >= ? AND attendance_log_day <= ?",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID]map[string]checkinModel.AttendanceLogModel, len(userIDs))
	for _, l := range logs {
		m := byUser[l.AttendanceLogUserID]
		if m == nil {
			m = make(map[string]checkinModel.AttendanceLogModel)
			byUser[l.AttendanceLogUserID] = m
		}
		m[l.AttendanceLogDay.Format("2006-01-02")] = l
	}
	return byUser, nil
}

// loadApprovedLeaves: urut created_at ASC — urutan inilah yang menentukan
// pemenang ketika beberapa cuti approved menimpa hari yang sama.
func loadApprovedLeaves(db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID][]leaveModel.LeaveRequestModel, error) {
	var leaves []leaveModel.LeaveRequestModel
	if err := db.
		Where("leave_request_user_id IN ?", userIDs).
		Where("leave_request_status = ?", leaveModel.LeaveStatusApproved).
		Order("leave_request_created_at ASC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID][]leaveModel.LeaveRequestModel)
	for _, l := range leaves {
		byUser[l.LeaveRequestUserID] = append(byUser[l.LeaveRequestUserID], l)
	}
	return byUser, nil
}

// LoadResolveInput memuat seluruh fakta resolusi satu karyawan untuk satu
// rentang tanggal. Dipakai controller detail dan materializer summary.
func LoadResolveInput(db *gorm.DB, u userModel.UserModel, start, end, today time.Time) (ResolveInput, error) {
	logsByUser, err := loadLogs(db, []uuid.UUID{u.UserID}, start, end)
	if err != nil {
		return ResolveInput{}, err
	}
	leavesByUser, err := loadApprovedLeaves(db, []uuid.UUID{u.UserID})
	if err != nil {
		return ResolveInput{}, err
	}
	holidays, err := LoadHolidayIndex(db, start, end)
	if err != nil {
		return ResolveInput{}, err
	}

	return ResolveInput{
		JoinDate: u.JoinDate(),
		Today:    today,
		Logs:     logsByUser[u.UserID],
		Leaves:   leavesByUser[u.UserID],
		Holidays: holidays,
	}, nil
}

// LoadHolidayIndex membangun indeks tanggal→nama libur untuk satu rentang.
func LoadHolidayIndex(db *gorm.DB, start, end time.Time) (map[string]string, error) {
	var holidays []holidayModel.HolidayModel
	if err := db.
		Where("holiday_date >= ? AND holiday_date <= ?",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&holidays).Error; err != nil {
		return nil, err
	}

	idx := make(map[string]string, len(holidays))
	for _, h := range holidays {
		idx[h.Date().Format("2006-01-02")] = h.HolidayName
	}
	return idx, nil
}
