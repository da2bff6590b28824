package mapper

import (
	"time"

	"sadguru-seva-be/internal/entity"
	"sadguru-seva-be/internal/model"

	"gorm.io/datatypes"
)

type JapaMapper struct{}

func NewJapaMapper() *JapaMapper {
	return &JapaMapper{}
}

func (m *JapaMapper) SessionToEntity(s *model.JapaSession) *entity.JapaSession {
	if s == nil {
		return nil
	}
	return &entity.JapaSession{
		Id:              s.Id,
		UserToken:       s.UserToken,
		TotalCount:      s.TotalCount,
		PatternPosition: s.PatternPosition,
		RepetitionCount: s.RepetitionCount,
		Active:          s.SessionActive,
		SessionStart:    s.SessionStart,
		SessionEnd:      s.SessionEnd,
		LastUpdated:     s.LastUpdated,
	}
}

func (m *JapaMapper) SessionToModel(s *entity.JapaSession) *model.JapaSession {
	if s == nil {
		return nil
	}
	return &model.JapaSession{
		Id:              s.Id,
		UserToken:       s.UserToken,
		TotalCount:      s.TotalCount,
		PatternPosition: s.PatternPosition,
		RepetitionCount: s.RepetitionCount,
		SessionActive:   s.Active,
		SessionStart:    s.SessionStart,
		SessionEnd:      s.SessionEnd,
		LastUpdated:     s.LastUpdated,
	}
}

func (m *JapaMapper) DailyCountToEntity(d *model.JapaDailyCount) *entity.JapaDailyCount {
	if d == nil {
		return nil
	}
	return &entity.JapaDailyCount{
		Id:          d.Id,
		UserToken:   d.UserToken,
		JapaDate:    time.Time(d.JapaDate),
		TotalRounds: d.TotalRounds,
		TotalWords:  d.TotalWords,
	}
}

func (m *JapaMapper) DailyCountToModel(d *entity.JapaDailyCount) *model.JapaDailyCount {
	if d == nil {
		return nil
	}
	return &model.JapaDailyCount{
		Id:          d.Id,
		UserToken:   d.UserToken,
		JapaDate:    datatypes.Date(d.JapaDate),
		TotalRounds: d.TotalRounds,
		TotalWords:  d.TotalWords,
	}
}
