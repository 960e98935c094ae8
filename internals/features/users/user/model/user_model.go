package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	UserName  string  `json:"user_name"            gorm:"column:user_name;type:varchar(255);not null"`
	UserEmail string  `json:"user_email"           gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email,where:user_deleted_at IS NULL"`
	UserPhone *string `json:"user_phone,omitempty" gorm:"column:user_phone;type:varchar(32)"`

	// bcrypt hash, tidak pernah keluar di JSON
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	UserRole     string  `json:"user_role"              gorm:"column:user_role;type:varchar(16);not null;default:employee;index:idx_users_role"`
	UserPosition string  `json:"user_position"          gorm:"column:user_position;type:varchar(120);not null"`
	UserStatus   string  `json:"user_status"            gorm:"column:user_status;type:varchar(16);not null;default:active"`
	UserAddress  *string `json:"user_address,omitempty" gorm:"column:user_address;type:varchar(500)"`

	// Hasil review AI terakhir (analytics)
	UserAISummary         *string    `json:"user_ai_summary,omitempty"           gorm:"column:user_ai_summary;type:text"`
	UserLastAIGeneratedAt *time.Time `json:"user_last_ai_generated_at,omitempty" gorm:"column:user_last_ai_generated_at;type:timestamptz"`

	// created_at sekaligus tanggal bergabung karyawan (batas bawah resolusi status harian)
	UserCreatedAt time.Time      `json:"user_created_at"           gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at"           gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

// JoinDate mengembalikan tanggal bergabung (created_at dipotong ke awal hari).
func (u *UserModel) JoinDate() time.Time {
	y, m, d := u.UserCreatedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, u.UserCreatedAt.Location())
}

func (u *UserModel) IsActive() bool { return u.UserStatus == "active" }
