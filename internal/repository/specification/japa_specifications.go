package specification

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ByUserToken filters japa rows by the owning user token.
type ByUserToken struct {
	UserToken string
}

func (s ByUserToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_token = ?", s.UserToken)
}

// ActiveSession keeps only the currently active session row.
type ActiveSession struct{}

func (s ActiveSession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_active = ?", true)
}

// ForUpdate takes a row lock (SELECT ... FOR UPDATE). Only meaningful inside
// a transaction; it serializes concurrent writers on the same session row so
// pattern pointers and counters never interleave.
type ForUpdate struct{}

func (s ForUpdate) Apply(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ByJapaDate selects the daily-count row for one calendar day. The day is
// bucketed in IST before it gets here, so only the date part matters.
type ByJapaDate struct {
	Date time.Time
}

func (s ByJapaDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("japa_date = ?", s.Date.Format("2006-01-02"))
}
