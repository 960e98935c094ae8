package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status tersimpan hasil materialisasi harian
const (
	SummaryHadir     = "hadir"
	SummaryTerlambat = "terlambat"
	SummaryIzin      = "izin"
	SummarySakit     = "sakit"
	SummaryCuti      = "cuti"
	SummaryAlfa      = "alfa"
)

type AttendanceSummaryModel struct {
	AttendanceSummaryID     uuid.UUID `json:"attendance_summary_id"      gorm:"column:attendance_summary_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AttendanceSummaryUserID uuid.UUID `json:"attendance_summary_user_id" gorm:"column:attendance_summary_user_id;type:uuid;not null;uniqueIndex:uq_attendance_summaries_user_date"`

	AttendanceSummaryDate   datatypes.Date `json:"attendance_summary_date"   gorm:"column:attendance_summary_date;type:date;not null;uniqueIndex:uq_attendance_summaries_user_date"`
	AttendanceSummaryStatus string         `json:"attendance_summary_status" gorm:"column:attendance_summary_status;type:varchar(16);not null"`

	// Baris terkunci (koreksi manual admin) tidak boleh ditimpa job malam
	AttendanceSummaryLocked bool `json:"attendance_summary_locked" gorm:"column:attendance_summary_locked;not null;default:false"`

	AttendanceSummaryCreatedAt time.Time `json:"attendance_summary_created_at" gorm:"column:attendance_summary_created_at;type:timestamptz;not null;autoCreateTime"`
	AttendanceSummaryUpdatedAt time.Time `json:"attendance_summary_updated_at" gorm:"column:attendance_summary_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (AttendanceSummaryModel) TableName() string { return "attendance_summaries" }
