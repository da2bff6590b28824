package contract

import (
	"context"
	"time"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/repository/specification"
)

type JapaSessionRepository interface {
	Create(ctx context.Context, session *entity.JapaSession) error
	Update(ctx context.Context, session *entity.JapaSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JapaSession, error)
}

// JapaLifetime is the all-time aggregate derived from daily rows.
type JapaLifetime struct {
	TotalRounds int64
	TotalWords  int64
}

type JapaDailyCountRepository interface {
	// AddRound upserts the (userToken, date) row, adding one round and
	// wordsPerRound words. Concurrent calls never lose increments.
	AddRound(ctx context.Context, userToken string, date time.Time, wordsPerRound int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JapaDailyCount, error)
	Lifetime(ctx context.Context, userToken string) (*JapaLifetime, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
	CityStats(ctx context.Context) ([]*entity.CityStat, error)
}
