// FILE: internal/entity/photo_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one gallery image. Metadata holds free-form details (camera,
// occasion, alt text) persisted as a JSON column.
type Photo struct {
	Id          uuid.UUID
	Title       string
	Description string
	Category    string
	FileURL     string
	Metadata    map[string]interface{}
	UploadedBy  string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// PhotoStats summarizes the gallery for the admin screen.
type PhotoStats struct {
	Total      int64
	ByCategory []CategoryStat
}
