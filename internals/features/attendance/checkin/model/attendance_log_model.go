package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusTepatWaktu = "Tepat Waktu"
	StatusTerlambat  = "Terlambat"
)

type AttendanceLogModel struct {
	AttendanceLogID     uuid.UUID `json:"attendance_log_id"      gorm:"column:attendance_log_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AttendanceLogUserID uuid.UUID `json:"attendance_log_user_id" gorm:"column:attendance_log_user_id;type:uuid;not null;uniqueIndex:uq_attendance_logs_user_day"`

	// Tanggal kalender absensi; unik per user per hari (satu check-in/hari).
	// Parsial: log yang di-soft-delete (reset admin) melepas slotnya supaya
	// karyawan bisa check-in ulang.
	AttendanceLogDay time.Time `json:"attendance_log_day" gorm:"column:attendance_log_day;type:date;not null;uniqueIndex:uq_attendance_logs_user_day,where:attendance_log_deleted_at IS NULL"`

	AttendanceLogCheckInTime  time.Time  `json:"attendance_log_check_in_time"            gorm:"column:attendance_log_check_in_time;type:timestamptz;not null"`
	AttendanceLogCheckOutTime *time.Time `json:"attendance_log_check_out_time,omitempty" gorm:"column:attendance_log_check_out_time;type:timestamptz"`

	// "Tepat Waktu" atau "Terlambat"
	AttendanceLogStatus string `json:"attendance_log_status" gorm:"column:attendance_log_status;type:varchar(32);not null"`

	AttendanceLogLatitude  *float64 `json:"attendance_log_latitude,omitempty"  gorm:"column:attendance_log_latitude;type:double precision"`
	AttendanceLogLongitude *float64 `json:"attendance_log_longitude,omitempty" gorm:"column:attendance_log_longitude;type:double precision"`

	AttendanceLogRiskScore  int     `json:"attendance_log_risk_score"           gorm:"column:attendance_log_risk_score;type:int;not null;default:0"`
	AttendanceLogRiskNote   *string `json:"attendance_log_risk_note,omitempty"  gorm:"column:attendance_log_risk_note;type:text"`
	AttendanceLogDeviceInfo *string `json:"attendance_log_device_info,omitempty" gorm:"column:attendance_log_device_info;type:varchar(255)"`

	AttendanceLogCreatedAt time.Time      `json:"attendance_log_created_at"           gorm:"column:attendance_log_created_at;type:timestamptz;not null;autoCreateTime"`
	AttendanceLogUpdatedAt time.Time      `json:"attendance_log_updated_at"           gorm:"column:attendance_log_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AttendanceLogDeletedAt gorm.DeletedAt `json:"attendance_log_deleted_at,omitempty" gorm:"column:attendance_log_deleted_at;index"`
}

func (AttendanceLogModel) TableName() string { return "attendance_logs" }
