package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Photo struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	FileURL     string    `gorm:"type:text;not null"`
	Metadata    datatypes.JSON
	UploadedBy  string    `gorm:"type:varchar(100)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Photo) TableName() string {
	return "photos"
}
