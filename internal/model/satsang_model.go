package model

import (
	"time"

	"github.com/google/uuid"
)

type Satsang struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageNumber int       `gorm:"uniqueIndex;not null"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text;not null"`
	ContentEn  string    `gorm:"type:text"`
	Author     string    `gorm:"type:varchar(100)"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Satsang) TableName() string {
	return "satsang"
}

type Program struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	ProgramDate time.Time `gorm:"not null;index"`
	SubmittedBy string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Program) TableName() string {
	return "programs"
}
