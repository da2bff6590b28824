package model

import (
	"time"

	"github.com/google/uuid"
)

type Bhakt struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	City         string    `gorm:"type:varchar(100)"`
	SevaInterest string    `gorm:"type:varchar(100)"`
	SubmittedAt  time.Time `gorm:"autoCreateTime"`
}

func (Bhakt) TableName() string {
	return "bhaktgan"
}

type ContactMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
