package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OnDutyStatus string

const (
	OnDutyStatusPending  OnDutyStatus = "pending"
	OnDutyStatusApproved OnDutyStatus = "approved"
	OnDutyStatusRejected OnDutyStatus = "rejected"
)

// OnDutyModel adalah izin dinas luar/WFH; kalau approved dan mencakup hari
// ini, pemeriksaan geofence saat check-in dilewati.
type OnDutyModel struct {
	OnDutyID     uuid.UUID `json:"on_duty_id"      gorm:"column:on_duty_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OnDutyUserID uuid.UUID `json:"on_duty_user_id" gorm:"column:on_duty_user_id;type:uuid;not null;index:idx_on_duties_user"`

	OnDutyStartDate datatypes.Date `json:"on_duty_start_date" gorm:"column:on_duty_start_date;type:date;not null"`
	OnDutyEndDate   datatypes.Date `json:"on_duty_end_date"   gorm:"column:on_duty_end_date;type:date;not null"`

	OnDutyReason   string       `json:"on_duty_reason"   gorm:"column:on_duty_reason;type:text;not null"`
	OnDutyLocation *string      `json:"on_duty_location,omitempty" gorm:"column:on_duty_location;type:varchar(255)"`
	OnDutyStatus   OnDutyStatus `json:"on_duty_status"   gorm:"column:on_duty_status;type:varchar(16);not null;default:pending;index:idx_on_duties_status"`

	OnDutyApprovedBy *uuid.UUID `json:"on_duty_approved_by,omitempty" gorm:"column:on_duty_approved_by;type:uuid"`

	OnDutyCreatedAt time.Time      `json:"on_duty_created_at"           gorm:"column:on_duty_created_at;type:timestamptz;not null;autoCreateTime"`
	OnDutyUpdatedAt time.Time      `json:"on_duty_updated_at"           gorm:"column:on_duty_updated_at;type:timestamptz;not null;autoUpdateTime"`
	OnDutyDeletedAt gorm.DeletedAt `json:"on_duty_deleted_at,omitempty" gorm:"column:on_duty_deleted_at;index"`
}

func (OnDutyModel) TableName() string { return "on_duties" }

// IsOnDutyToday: ada dinas approved yang mencakup tanggal tertentu?
func IsOnDutyOn(db *gorm.DB, userID uuid.UUID, day time.Time) (bool, error) {
	date := day.Format("2006-01-02")
	var count int64
	err := db.Model(&OnDutyModel{}).
		Where("on_duty_user_id = ?", userID).
		Where("on_duty_status = ?", OnDutyStatusApproved).
		Where("on_duty_start_date <= ? AND on_duty_end_date >= ?", date, date).
		Count(&count).Error
	return count > 0, err
}
