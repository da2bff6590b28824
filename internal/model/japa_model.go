package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JapaSession rows are never deleted. The partial unique index enforces at
// most one active session per user token; StartSession relies on it.
type JapaSession struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserToken       string    `gorm:"type:varchar(64);not null;index;uniqueIndex:uniq_active_session,where:session_active"`
	TotalCount      int       `gorm:"not null;default:0"`
	PatternPosition int       `gorm:"not null;default:1"`
	RepetitionCount int       `gorm:"not null;default:1"`
	SessionActive   bool      `gorm:"column:session_active;not null;default:true"`
	SessionStart    time.Time `gorm:"autoCreateTime"`
	SessionEnd      *time.Time
	LastUpdated     time.Time `gorm:"autoUpdateTime"`
}

func (JapaSession) TableName() string {
	return "japa_sessions"
}

// JapaDailyCount is unique per (user token, IST date). Round completions
// upsert with additive arithmetic, never absolute writes.
type JapaDailyCount struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserToken   string         `gorm:"type:varchar(64);not null;uniqueIndex:uniq_user_date"`
	JapaDate    datatypes.Date `gorm:"not null;uniqueIndex:uniq_user_date"`
	TotalRounds int            `gorm:"not null;default:0"`
	TotalWords  int            `gorm:"not null;default:0"`
}

func (JapaDailyCount) TableName() string {
	return "japa_daily_counts"
}
