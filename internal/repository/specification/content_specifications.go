package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByPageNumber selects one satsang page.
type ByPageNumber struct {
	Page int
}

func (s ByPageNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_number = ?", s.Page)
}

// ProgramsFrom keeps programs on or after the given instant.
type ProgramsFrom struct {
	From time.Time
}

func (s ProgramsFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("program_date >= ?", s.From)
}

// ProgramsBefore keeps programs strictly before the given instant.
type ProgramsBefore struct {
	Before time.Time
}

func (s ProgramsBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("program_date < ?", s.Before)
}

// RandomOrder shuffles results server-side, used for the random photo pick.
type RandomOrder struct{}

func (s RandomOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("RANDOM()")
}
