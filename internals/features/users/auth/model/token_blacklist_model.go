package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID      `json:"token_blacklist_id"         gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TokenBlacklistToken     string         `json:"token_blacklist_token"      gorm:"column:token_blacklist_token;type:text;not null;index:idx_token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;type:timestamptz;not null"`
	TokenBlacklistCreatedAt time.Time      `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;type:timestamptz;not null;autoCreateTime"`
	TokenBlacklistDeletedAt gorm.DeletedAt `json:"token_blacklist_deleted_at,omitempty" gorm:"column:token_blacklist_deleted_at;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
