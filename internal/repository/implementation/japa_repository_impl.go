package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/mapper"
	"sadguru-seva-be/internal/model"
	"sadguru-seva-be/internal/repository/contract"
	"sadguru-seva-be/internal/repository/specification"
)

type JapaSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JapaMapper
}

func NewJapaSessionRepository(db *gorm.DB) contract.JapaSessionRepository {
	return &JapaSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewJapaMapper(),
	}
}

func (r *JapaSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JapaSessionRepositoryImpl) Create(ctx context.Context, session *entity.JapaSession) error {
	m := r.mapper.SessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *JapaSessionRepositoryImpl) Update(ctx context.Context, session *entity.JapaSession) error {
	m := r.mapper.SessionToModel(session)
	// Save would skip session_active when it goes false, so write the
	// columns explicitly.
	err := r.db.WithContext(ctx).Model(&model.JapaSession{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"total_count":      m.TotalCount,
			"pattern_position": m.PatternPosition,
			"repetition_count": m.RepetitionCount,
			"session_active":   m.SessionActive,
			"session_end":      m.SessionEnd,
			"last_updated":     time.Now(),
		}).Error
	if err != nil {
		return err
	}
	session.LastUpdated = time.Now()
	return nil
}

func (r *JapaSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JapaSession, error) {
	var m model.JapaSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m), nil
}

type JapaDailyCountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JapaMapper
}

func NewJapaDailyCountRepository(db *gorm.DB) contract.JapaDailyCountRepository {
	return &JapaDailyCountRepositoryImpl{
		db:     db,
		mapper: mapper.NewJapaMapper(),
	}
}

func (r *JapaDailyCountRepositoryImpl) AddRound(ctx context.Context, userToken string, date time.Time, wordsPerRound int) error {
	row := &model.JapaDailyCount{
		UserToken:   userToken,
		JapaDate:    datatypes.Date(date),
		TotalRounds: 1,
		TotalWords:  wordsPerRound,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_token"}, {Name: "japa_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_rounds": gorm.Expr("japa_daily_counts.total_rounds + 1"),
			"total_words":  gorm.Expr("japa_daily_counts.total_words + ?", wordsPerRound),
		}),
	}).Create(row).Error
}

func (r *JapaDailyCountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JapaDailyCount, error) {
	var m model.JapaDailyCount
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DailyCountToEntity(&m), nil
}

func (r *JapaDailyCountRepositoryImpl) Lifetime(ctx context.Context, userToken string) (*contract.JapaLifetime, error) {
	var result contract.JapaLifetime
	err := r.db.WithContext(ctx).Model(&model.JapaDailyCount{}).
		Select("COALESCE(SUM(total_rounds), 0) AS total_rounds, COALESCE(SUM(total_words), 0) AS total_words").
		Where("user_token = ?", userToken).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard joins lifetime sums against registered bhaktgan so rows carry
// a display name and city. Anonymous tokens never appear here.
func (r *JapaDailyCountRepositoryImpl) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	var entries []*entity.LeaderboardEntry
	err := r.db.WithContext(ctx).Model(&model.JapaDailyCount{}).
		Select("users.name AS name, COALESCE(bhaktgan.city, '') AS city, SUM(japa_daily_counts.total_words) AS total_words, SUM(japa_daily_counts.total_rounds) AS rounds").
		Joins("JOIN users ON users.id::text = japa_daily_counts.user_token").
		Joins("LEFT JOIN bhaktgan ON RIGHT(regexp_replace(bhaktgan.phone, '\\D', '', 'g'), 10) = users.mobile").
		Group("users.name, bhaktgan.city").
		Order("total_words DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JapaDailyCountRepositoryImpl) CityStats(ctx context.Context) ([]*entity.CityStat, error) {
	var stats []*entity.CityStat
	err := r.db.WithContext(ctx).Model(&model.JapaDailyCount{}).
		Select("bhaktgan.city AS city, COUNT(DISTINCT japa_daily_counts.user_token) AS user_count, SUM(japa_daily_counts.total_words) AS total_words, SUM(japa_daily_counts.total_rounds) AS rounds, AVG(japa_daily_counts.total_words) AS avg_words").
		Joins("JOIN users ON users.id::text = japa_daily_counts.user_token").
		Joins("JOIN bhaktgan ON RIGHT(regexp_replace(bhaktgan.phone, '\\D', '', 'g'), 10) = users.mobile").
		Where("bhaktgan.city <> ''").
		Group("bhaktgan.city").
		Order("total_words DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
