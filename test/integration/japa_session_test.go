package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/japa/matcher"
	"sadguru-seva-be/internal/japa/pattern"
	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/repository/specification"
	"sadguru-seva-be/internal/repository/unitofwork"
	"sadguru-seva-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJapaService(gormDB *gorm.DB) service.IJapaService {
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	log := logger.NewZapLogger("logs/test.log", false)
	return service.NewJapaService(uowFactory, matcher.New(matcher.DefaultFuzzyThreshold), nil, nil, log)
}

func TestJapaSessionLifecycle(t *testing.T) {
	gormDB := connectDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()

	userToken := "anon-" + uuid.NewString()

	// 1. Create a fresh session
	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	now := time.Now()
	session := &entity.JapaSession{
		Id:              uuid.New(),
		UserToken:       userToken,
		TotalCount:      0,
		PatternPosition: 1,
		RepetitionCount: 1,
		Active:          true,
		SessionStart:    now,
		LastUpdated:     now,
	}
	require.NoError(t, uow.JapaSessionRepository().Create(ctx, session))
	require.NoError(t, uow.Commit())

	// 2. The active session is findable by token
	uow = uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	found, err := uow.JapaSessionRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken},
		specification.ActiveSession{},
	)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.Id, found.Id)
	assert.Equal(t, 1, found.PatternPosition)
	assert.True(t, found.Active)

	// 3. Advance the counter and persist
	found.TotalCount = 5
	found.PatternPosition = 2
	found.LastUpdated = time.Now()
	require.NoError(t, uow.JapaSessionRepository().Update(ctx, found))
	require.NoError(t, uow.Commit())

	// 4. A second active session for the same token is rejected
	uow = uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	dup := &entity.JapaSession{
		Id:              uuid.New(),
		UserToken:       userToken,
		PatternPosition: 1,
		RepetitionCount: 1,
		Active:          true,
		SessionStart:    time.Now(),
		LastUpdated:     time.Now(),
	}
	err = uow.JapaSessionRepository().Create(ctx, dup)
	assert.Error(t, err, "partial unique index should reject a second active session")
	uow.Rollback()

	// 5. End the session; deactivation must persist
	uow = uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	endTime := time.Now()
	found.Active = false
	found.SessionEnd = &endTime
	found.LastUpdated = endTime
	require.NoError(t, uow.JapaSessionRepository().Update(ctx, found))
	require.NoError(t, uow.Commit())

	uow = uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	active, err := uow.JapaSessionRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken},
		specification.ActiveSession{},
	)
	require.NoError(t, err)
	assert.Nil(t, active, "ended session must no longer match the active filter")
}

func TestJapaDailyCountUpsert(t *testing.T) {
	gormDB := connectDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()

	userToken := "anon-" + uuid.NewString()
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	// Two rounds on the same day must land in one additive row.
	for i := 0; i < 2; i++ {
		uow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.JapaDailyCountRepository().AddRound(ctx, userToken, day, 16))
		require.NoError(t, uow.Commit())
	}

	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	row, err := uow.JapaDailyCountRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken},
		specification.ByJapaDate{Date: day},
	)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.TotalRounds)
	assert.Equal(t, 32, row.TotalWords)

	// A different day opens a new bucket and lifetime sums both.
	nextDay := day.AddDate(0, 0, 1)
	require.NoError(t, uow.JapaDailyCountRepository().AddRound(ctx, userToken, nextDay, 16))

	lifetime, err := uow.JapaDailyCountRepository().Lifetime(ctx, userToken)
	require.NoError(t, err)
	assert.Equal(t, int64(3), lifetime.TotalRounds)
	assert.Equal(t, int64(48), lifetime.TotalWords)
}

// A full cycle through the service: start, one miss, sixteen correct words,
// the round completing on the last, and the daily bucket moving by one round.
func TestJapaServiceFullRound(t *testing.T) {
	gormDB := connectDB(t)
	svc := newJapaService(gormDB)
	ctx := context.Background()

	userToken := "anon-" + uuid.NewString()

	start, err := svc.StartSession(ctx, userToken)
	require.NoError(t, err)
	assert.False(t, start.Resumed)
	require.Equal(t, "radhe", start.Expected.Word)
	require.Len(t, start.Pattern, pattern.TotalUtterances)

	before, err := svc.Stats(ctx, userToken)
	require.NoError(t, err)

	// A wrong word is a pure read: nothing advances.
	miss, err := svc.RecordWord(ctx, userToken, &dto.RecordWordRequest{Word: "banana"})
	require.NoError(t, err)
	assert.False(t, miss.Matched)
	assert.Equal(t, 0, miss.TotalCount)
	assert.Equal(t, 1, miss.Expected.UtteranceIndex)

	expected := start.Expected
	var last *dto.RecordWordResponse
	for i := 1; i <= pattern.TotalUtterances; i++ {
		resp, err := svc.RecordWord(ctx, userToken, &dto.RecordWordRequest{Word: expected.Word})
		require.NoError(t, err)
		require.True(t, resp.Matched, "utterance %d (%s)", i, expected.Word)
		assert.Equal(t, i, resp.TotalCount)
		if i < pattern.TotalUtterances {
			assert.False(t, resp.CompletedRound)
		}
		expected = resp.Expected
		last = resp
	}

	require.True(t, last.CompletedRound, "the sixteenth utterance closes the round")
	assert.Equal(t, 1, last.RoundsToday)
	assert.Equal(t, 1, last.Expected.Position)
	assert.Equal(t, 1, last.Expected.RepetitionNumber)

	after, err := svc.Stats(ctx, userToken)
	require.NoError(t, err)
	assert.Equal(t, before.TodayRounds+1, after.TodayRounds)
	assert.Equal(t, before.TodayWords+pattern.TotalUtterances, after.TodayWords)
	assert.Equal(t, before.LifetimeRounds+1, after.LifetimeRounds)

	end, err := svc.EndSession(ctx, userToken)
	require.NoError(t, err)
	assert.True(t, end.WasActive)
	assert.Equal(t, pattern.TotalUtterances, end.TotalCount)
}

// Concurrent starts for the same token must all resolve to the one session,
// never an error from the unique-index loser.
func TestJapaServiceConcurrentStart(t *testing.T) {
	gormDB := connectDB(t)
	svc := newJapaService(gormDB)
	ctx := context.Background()

	userToken := "anon-" + uuid.NewString()

	const workers = 4
	results := make([]*dto.StartSessionResponse, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.StartSession(ctx, userToken)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "starter %d", i)
		require.NotNil(t, results[i])
		assert.Equal(t, results[0].SessionId, results[i].SessionId)
	}

	_, err := svc.EndSession(ctx, userToken)
	require.NoError(t, err)
}

// Concurrent words for one session serialize on the row lock: with four
// copies of the opening word in flight, exactly one matches and the stored
// pointer advances exactly once.
func TestJapaServiceConcurrentRecord(t *testing.T) {
	gormDB := connectDB(t)
	svc := newJapaService(gormDB)
	ctx := context.Background()

	userToken := "anon-" + uuid.NewString()
	_, err := svc.StartSession(ctx, userToken)
	require.NoError(t, err)

	const workers = 4
	matches := make([]bool, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.RecordWord(ctx, userToken, &dto.RecordWordRequest{Word: "radhe"})
			errs[i] = err
			if err == nil {
				matches[i] = resp.Matched
			}
		}(i)
	}
	wg.Wait()

	matched := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "recorder %d", i)
		if matches[i] {
			matched++
		}
	}
	// The first holder of the lock matches and moves the pointer to krishna;
	// every later radhe misses against the new expected word.
	assert.Equal(t, 1, matched)

	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	session, err := uow.JapaSessionRepository().FindOne(ctx,
		specification.ByUserToken{UserToken: userToken}, specification.ActiveSession{})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.TotalCount)
	assert.Equal(t, 2, session.PatternPosition)

	_, err = svc.EndSession(ctx, userToken)
	require.NoError(t, err)
}
