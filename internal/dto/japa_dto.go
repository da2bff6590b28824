package dto

import "sadguru-seva-be/internal/japa/pattern"

type StartSessionResponse struct {
	SessionId  string                    `json:"session_id"`
	Resumed    bool                      `json:"resumed"`
	TotalCount int                       `json:"total_count"`
	Expected   pattern.ExpectedUtterance `json:"expected"`
	Pattern    []pattern.DisplayWord     `json:"pattern"`
}

type RecordWordRequest struct {
	Word string `json:"word" validate:"required,max=100"`
}

type RecordWordResponse struct {
	Matched        bool                      `json:"matched"`
	Score          float64                   `json:"score"`
	TotalCount     int                       `json:"total_count"`
	CompletedRound bool                      `json:"completed_round"`
	RoundsToday    int                       `json:"rounds_today"`
	Expected       pattern.ExpectedUtterance `json:"expected"`
}

type EndSessionResponse struct {
	SessionId  string `json:"session_id,omitempty"`
	TotalCount int    `json:"total_count"`
	WasActive  bool   `json:"was_active"`
}

type JapaStatsResponse struct {
	Date           string `json:"date"`
	TodayRounds    int    `json:"today_rounds"`
	TodayWords     int    `json:"today_words"`
	LifetimeRounds int64  `json:"lifetime_rounds"`
	LifetimeWords  int64  `json:"lifetime_words"`
}

type LeaderboardEntryResponse struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	TotalWords int64  `json:"total_words"`
	Rounds     int64  `json:"rounds"`
}

type CityStatResponse struct {
	City       string  `json:"city"`
	UserCount  int64   `json:"user_count"`
	TotalWords int64   `json:"total_words"`
	Rounds     int64   `json:"rounds"`
	AvgWords   float64 `json:"avg_words"`
}
