package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(50);not null"`
	Mobile      string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	OTP         *string   `gorm:"type:varchar(6)"`
	OTPExpiry   *time.Time
	OTPVerified bool `gorm:"default:false"`
	LastLoginAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type AuthorizedAdmin struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Phone        string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	PasscodeHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AuthorizedAdmin) TableName() string {
	return "authorized_admins"
}
