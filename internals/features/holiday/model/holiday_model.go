package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HolidayModel struct {
	HolidayID uuid.UUID `json:"holiday_id" gorm:"column:holiday_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Satu tanggal libur hanya boleh punya satu entri
	HolidayDate datatypes.Date `json:"holiday_date" gorm:"column:holiday_date;type:date;not null;uniqueIndex:uq_holidays_date"`
	HolidayName string         `json:"holiday_name" gorm:"column:holiday_name;type:varchar(128);not null"`

	HolidayCreatedAt time.Time `json:"holiday_created_at" gorm:"column:holiday_created_at;type:timestamptz;not null;autoCreateTime"`
	HolidayUpdatedAt time.Time `json:"holiday_updated_at" gorm:"column:holiday_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (HolidayModel) TableName() string { return "holidays" }

func (m *HolidayModel) Date() time.Time { return time.Time(m.HolidayDate) }
