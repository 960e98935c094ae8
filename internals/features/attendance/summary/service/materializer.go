package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	recapService "absensiku_backend/internals/features/attendance/recap/service"
	"absensiku_backend/internals/features/attendance/summary/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
	userModel "absensiku_backend/internals/features/users/user/model"

	"absensiku_backend/internals/constants"
)

// SummaryStatusFor memetakan hasil resolver ke status tersimpan. ok=false
// berarti hari itu tidak dimaterialisasi (akhir pekan, libur, belum relevan).
func SummaryStatusFor(status recapService.DayStatus) (string, bool) {
	switch status.Kind {
	case recapService.KindOnTime:
		return model.SummaryHadir, true
	case recapService.KindLate:
		return model.SummaryTerlambat, true
	case recapService.KindAbsent:
		return model.SummaryAlfa, true
	case recapService.KindLeave:
		switch status.LeaveType {
		case leaveModel.LeaveTypeSakit:
			return model.SummarySakit, true
		case leaveModel.LeaveTypeCuti:
			return model.SummaryCuti, true
		default:
			return model.SummaryIzin, true
		}
	default:
		return "", false
	}
}

// MaterializeDay menuliskan AttendanceSummary untuk semua karyawan aktif pada
// satu tanggal. Kontrak snapshot: baris yang sudah ada TIDAK pernah ditulis
// ulang, sekalipun data sumbernya (log/izin) berubah setelah materialisasi.
// Idempoten: dijalankan dua kali tidak menambah atau mengubah apa pun.
func MaterializeDay(db *gorm.DB, day time.Time, today time.Time) (int, error) {
	var users []userModel.UserModel
	if err := db.
		Where("user_role = ?", constants.RoleEmployee).
		Where("user_status = ?", constants.StatusActive).
		Find(&users).Error; err != nil {
		return 0, fmt.Errorf("gagal memuat karyawan: %w", err)
	}

	dayStr := day.Format("2006-01-02")
	materialized, err := materializedUserIDs(db, dayStr)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, u := range UsersNeedingSummary(users, materialized) {
		in, err := recapService.LoadResolveInput(db, u, day, day, today)
		if err != nil {
			return written, err
		}

		stored, ok := SummaryStatusFor(recapService.Resolve(in, day))
		if !ok {
			continue
		}

		entry := model.AttendanceSummaryModel{
			AttendanceSummaryUserID: u.UserID,
			AttendanceSummaryDate:   datatypes.Date(day),
			AttendanceSummaryStatus: stored,
		}
		if err := db.Create(&entry).Error; err != nil {
			if isDuplicateKey(err) {
				continue // keburu ditulis proses lain; snapshot yang ada menang
			}
			return written, err
		}
		written++
	}

	log.Printf("[INFO] Materialisasi summary %s selesai: %d baris ditulis", dayStr, written)
	return written, nil
}

// UsersNeedingSummary menyaring karyawan yang belum punya baris summary pada
// tanggal tsb. Baris yang sudah ada (termasuk koreksi manual admin yang
// terkunci) dilewati seluruhnya, bukan diperbarui.
func UsersNeedingSummary(users []userModel.UserModel, materialized map[uuid.UUID]struct{}) []userModel.UserModel {
	out := make([]userModel.UserModel, 0, len(users))
	for _, u := range users {
		if _, done := materialized[u.UserID]; done {
			continue
		}
		out = append(out, u)
	}
	return out
}

func materializedUserIDs(db *gorm.DB, dayStr string) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := db.Model(&model.AttendanceSummaryModel{}).
		Where("attendance_summary_date = ?", dayStr).
		Pluck("attendance_summary_user_id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 23505")
}
