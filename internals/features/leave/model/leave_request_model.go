package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveType string

const (
	LeaveTypeCuti  LeaveType = "cuti"  // cuti tahunan
	LeaveTypeSakit LeaveType = "sakit" // sakit
	LeaveTypeIzin  LeaveType = "izin"  // izin pribadi
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequestModel struct {
	LeaveRequestID     uuid.UUID `json:"leave_request_id"      gorm:"column:leave_request_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestUserID uuid.UUID `json:"leave_request_user_id" gorm:"column:leave_request_user_id;type:uuid;not null;index:idx_leave_requests_user"`

	LeaveRequestReason string `json:"leave_request_reason" gorm:"column:leave_request_reason;type:text;not null"`

	// Teks mentah "YYYY-MM-DD - YYYY-MM-DD" atau satu tanggal; data lama bisa
	// saja rusak, normalisasi dilakukan lazy lewat ParseLeaveDuration.
	LeaveRequestDuration string `json:"leave_request_duration" gorm:"column:leave_request_duration;type:varchar(64);not null"`

	LeaveRequestType   LeaveType   `json:"leave_request_type"   gorm:"column:leave_request_type;type:varchar(16);not null;default:izin"`
	LeaveRequestStatus LeaveStatus `json:"leave_request_status" gorm:"column:leave_request_status;type:varchar(16);not null;default:pending;index:idx_leave_requests_status"`

	LeaveRequestApprovedBy *uuid.UUID `json:"leave_request_approved_by,omitempty" gorm:"column:leave_request_approved_by;type:uuid"`

	// Metadata lampiran pendukung (penyimpanan file di luar scope service ini)
	LeaveRequestSupportFileName *string `json:"leave_request_support_file_name,omitempty" gorm:"column:leave_request_support_file_name;type:varchar(255)"`

	LeaveRequestCreatedAt time.Time      `json:"leave_request_created_at"           gorm:"column:leave_request_created_at;type:timestamptz;not null;autoCreateTime"`
	LeaveRequestUpdatedAt time.Time      `json:"leave_request_updated_at"           gorm:"column:leave_request_updated_at;type:timestamptz;not null;autoUpdateTime"`
	LeaveRequestDeletedAt gorm.DeletedAt `json:"leave_request_deleted_at,omitempty" gorm:"column:leave_request_deleted_at;index"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }
