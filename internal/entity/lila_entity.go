// FILE: internal/entity/lila_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lila is one devotional story. Categories are free strings curated by the
// admins ("bal_lila", "ras_lila", ...).
type Lila struct {
	Id        uuid.UUID
	Title     string
	Category  string
	Content   string
	Excerpt   string
	ImageURL  string
	ViewCount int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CategoryStat counts active stories per category.
type CategoryStat struct {
	Category string
	Count    int64
}
