package model

import (
	"time"

	"github.com/google/uuid"
)

type Lila struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(100);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Excerpt   string    `gorm:"type:varchar(500)"`
	ImageURL  string    `gorm:"type:text"`
	ViewCount int       `gorm:"not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Lila) TableName() string {
	return "krishna_lilas"
}
