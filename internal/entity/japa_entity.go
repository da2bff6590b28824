// FILE: internal/entity/japa_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// JapaSession is a user's open, resumable counting run. UserToken is opaque:
// an authenticated user id or an anonymous token bound to the client cookie.
// At most one session per token is active at a time; sessions are never
// physically deleted, only deactivated.
type JapaSession struct {
	Id              uuid.UUID
	UserToken       string
	TotalCount      int
	PatternPosition int
	RepetitionCount int
	Active          bool
	SessionStart    time.Time
	SessionEnd      *time.Time
	LastUpdated     time.Time
}

// JapaDailyCount is the (user, IST calendar date) rounds/words bucket.
// Lifetime figures are sums over these rows, so they can never decrease.
type JapaDailyCount struct {
	Id          uuid.UUID
	UserToken   string
	JapaDate    time.Time
	TotalRounds int
	TotalWords  int
}

// LeaderboardEntry is one row of the top-N ranking by lifetime words.
type LeaderboardEntry struct {
	Name       string
	City       string
	TotalWords int64
	Rounds     int64
}

// CityStat aggregates japa activity across one city.
type CityStat struct {
	City       string
	UserCount  int64
	TotalWords int64
	Rounds     int64
	AvgWords   float64
}
