package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/japa/matcher"
	"sadguru-seva-be/internal/japa/pattern"
	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
	"sadguru-seva-be/pkg/events"
	pktNats "sadguru-seva-be/pkg/nats"
)

const (
	maxWordLength = 100

	leaderboardCacheKey = "japa:leaderboard"
	cityStatsCacheKey   = "japa:citystats"
	statsCacheTTL       = 60 * time.Second

	leaderboardLimit = 50
)

// istZone fixes the day-rollover boundary to Indian Standard Time, which is
// where the satsang community counts its days.
var istZone = time.FixedZone("IST", 19800)

func istNow() time.Time {
	return time.Now().In(istZone)
}

// istToday returns midnight of the current IST calendar date.
func istToday() time.Time {
	now := istNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type IJapaService interface {
	StartSession(ctx context.Context, userToken string) (*dto.StartSessionResponse, error)
	RecordWord(ctx context.Context, userToken string, req *dto.RecordWordRequest) (*dto.RecordWordResponse, error)
	EndSession(ctx context.Context, userToken string) (*dto.EndSessionResponse, error)
	Stats(ctx context.Context, userToken string) (*dto.JapaStatsResponse, error)
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	CityStats(ctx context.Context) ([]dto.CityStatResponse, error)
}

type japaService struct {
	uowFactory     unitofwork.RepositoryFactory
	matcher        *matcher.Matcher
	eventPublisher *pktNats.Publisher
	rdb            *redis.Client
	logger         logger.ILogger
}

func NewJapaService(
	uowFactory unitofwork.RepositoryFactory,
	m *matcher.Matcher,
	eventPublisher *pktNats.Publisher,
	rdb *redis.Client,
	log logger.ILogger,
) IJapaService {
	return &japaService{
		uowFactory:     uowFactory,
		matcher:        m,
		eventPublisher: eventPublisher,
		rdb:            rdb,
		logger:         log,
	}
}

func newSession(userToken string) *entity.JapaSession {
	now := time.Now()
	return &entity.JapaSession{
		Id:              uuid.New(),
		UserToken:       userToken,
		TotalCount:      0,
		PatternPosition: 1,
		RepetitionCount: 1,
		Active:          true,
		SessionStart:    now,
		LastUpdated:     now,
	}
}

func (s *japaService) StartSession(ctx context.Context, userToken string) (*dto.StartSessionResponse, error) {
	if strings.TrimSpace(userToken) == "" {
		return nil, ErrInvalidInput
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sessions := uow.JapaSessionRepository()

	existing, err := sessions.FindOne(ctx, specification.ByUserToken{UserToken: userToken}, specification.ActiveSession{})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		expected := pattern.Expected(existing.PatternPosition, existing.RepetitionCount)
		return &dto.StartSessionResponse{
			SessionId:  existing.Id.String(),
			Resumed:    true,
			TotalCount: existing.TotalCount,
			Expected:   expected,
			Pattern:    pattern.Display(),
		}, nil
	}

	session := newSession(userToken)
	if err := sessions.Create(ctx, session); err != nil {
		// A concurrent start may have won the partial unique index race.
		// The violated insert aborts the whole transaction, so the re-find
		// has to run outside it on a fresh unit of work.
		uow.Rollback()
		readUow := s.uowFactory.NewUnitOfWork(ctx)
		if raced, findErr := readUow.JapaSessionRepository().FindOne(ctx,
			specification.ByUserToken{UserToken: userToken}, specification.ActiveSession{}); findErr == nil && raced != nil {
			expected := pattern.Expected(raced.PatternPosition, raced.RepetitionCount)
			return &dto.StartSessionResponse{
				SessionId:  raced.Id.String(),
				Resumed:    true,
				TotalCount: raced.TotalCount,
				Expected:   expected,
				Pattern:    pattern.Display(),
			}, nil
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.StartSessionResponse{
		SessionId:  session.Id.String(),
		Resumed:    false,
		TotalCount: 0,
		Expected:   pattern.Expected(1, 1),
		Pattern:    pattern.Display(),
	}, nil
}

func (s *japaService) RecordWord(ctx context.Context, userToken string, req *dto.RecordWordRequest) (*dto.RecordWordResponse, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" || utf8.RuneCountInString(word) > maxWordLength {
		return nil, ErrInvalidInput
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Row lock so two concurrent matches cannot both read the same pattern
	// pointer and overwrite each other's advance.
	session, err := uow.JapaSessionRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken}, specification.ActiveSession{}, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	expected := pattern.Expected(session.PatternPosition, session.RepetitionCount)
	matched, score := s.matcher.Match(word, expected.Word)

	if !matched {
		// No mutation on a miss; the open transaction is rolled back.
		return &dto.RecordWordResponse{
			Matched:    false,
			Score:      score,
			TotalCount: session.TotalCount,
			Expected:   expected,
		}, nil
	}

	newPos, newRep, completedRound := pattern.Advance(session.PatternPosition, session.RepetitionCount)
	session.PatternPosition = newPos
	session.RepetitionCount = newRep
	session.TotalCount++

	if err := uow.JapaSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	today := istToday()
	dailyCounts := uow.JapaDailyCountRepository()

	if completedRound {
		if err := dailyCounts.AddRound(ctx, userToken, today, pattern.TotalUtterances); err != nil {
			return nil, err
		}
	}

	roundsToday := 0
	daily, err := dailyCounts.FindOne(ctx,
		specification.ByUserToken{UserToken: userToken}, specification.ByJapaDate{Date: today})
	if err != nil {
		return nil, err
	}
	if daily != nil {
		roundsToday = daily.TotalRounds
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if completedRound && s.eventPublisher != nil {
		evt := events.NewJapaRoundCompleted(userToken, session.TotalCount, roundsToday)
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.eventPublisher.Publish(pubCtx, evt); err != nil {
				s.logger.Warn("JapaService", "Failed to publish round completion", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	return &dto.RecordWordResponse{
		Matched:        true,
		Score:          score,
		TotalCount:     session.TotalCount,
		CompletedRound: completedRound,
		RoundsToday:    roundsToday,
		Expected:       pattern.Expected(newPos, newRep),
	}, nil
}

func (s *japaService) EndSession(ctx context.Context, userToken string) (*dto.EndSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.JapaSessionRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken}, specification.ActiveSession{}, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if session == nil {
		// Ending twice is fine.
		return &dto.EndSessionResponse{WasActive: false}, nil
	}

	now := time.Now()
	session.Active = false
	session.SessionEnd = &now
	if err := uow.JapaSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.EndSessionResponse{
		SessionId:  session.Id.String(),
		TotalCount: session.TotalCount,
		WasActive:  true,
	}, nil
}

func (s *japaService) Stats(ctx context.Context, userToken string) (*dto.JapaStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	dailyCounts := uow.JapaDailyCountRepository()

	today := istToday()
	daily, err := dailyCounts.FindOne(ctx,
		specification.ByUserToken{UserToken: userToken}, specification.ByJapaDate{Date: today})
	if err != nil {
		return nil, err
	}

	lifetime, err := dailyCounts.Lifetime(ctx, userToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.JapaStatsResponse{
		Date:           today.Format("2006-01-02"),
		LifetimeRounds: lifetime.TotalRounds,
		LifetimeWords:  lifetime.TotalWords,
	}
	if daily != nil {
		resp.TodayRounds = daily.TotalRounds
		resp.TodayWords = daily.TotalWords
	}
	return resp, nil
}

func (s *japaService) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []dto.LeaderboardEntryResponse
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.JapaDailyCountRepository().Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntryResponse, len(rows))
	for i, row := range rows {
		entries[i] = dto.LeaderboardEntryResponse{
			Rank:       i + 1,
			Name:       row.Name,
			City:       row.City,
			TotalWords: row.TotalWords,
			Rounds:     row.Rounds,
		}
	}

	s.cacheJSON(ctx, leaderboardCacheKey, entries)
	return entries, nil
}

func (s *japaService) CityStats(ctx context.Context) ([]dto.CityStatResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cityStatsCacheKey).Result(); err == nil {
			var stats []dto.CityStatResponse
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.JapaDailyCountRepository().CityStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.CityStatResponse, len(rows))
	for i, row := range rows {
		stats[i] = dto.CityStatResponse{
			City:       row.City,
			UserCount:  row.UserCount,
			TotalWords: row.TotalWords,
			Rounds:     row.Rounds,
			AvgWords:   row.AvgWords,
		}
	}

	s.cacheJSON(ctx, cityStatsCacheKey, stats)
	return stats, nil
}

func (s *japaService) cacheJSON(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, statsCacheTTL).Err(); err != nil {
		s.logger.Warn("JapaService", fmt.Sprintf("Failed to cache %s", key), map[string]interface{}{"error": err.Error()})
	}
}
