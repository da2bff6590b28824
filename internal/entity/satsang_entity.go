// FILE: internal/entity/satsang_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Satsang is one page of the daily satsang series. Page numbers count days
// since the series start date; the page served today is derived from that
// offset, never stored.
type Satsang struct {
	Id         uuid.UUID
	PageNumber int
	Title      string
	Content    string
	ContentEn  string
	Author     string
	IsActive   bool
	CreatedAt  time.Time
}

// Program is a scheduled devotional program/event.
type Program struct {
	Id          uuid.UUID
	Title       string
	Description string
	Location    string
	ProgramDate time.Time
	SubmittedBy string
	CreatedAt   time.Time
}
