package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayPageNumber(t *testing.T) {
	// Series start day is page 1.
	start := time.Date(2025, time.August, 17, 6, 0, 0, 0, istZone)
	assert.Equal(t, 1, TodayPageNumber(start))

	// The next IST day is page 2, regardless of time of day.
	assert.Equal(t, 2, TodayPageNumber(time.Date(2025, time.August, 18, 0, 0, 1, 0, istZone)))
	assert.Equal(t, 2, TodayPageNumber(time.Date(2025, time.August, 18, 23, 59, 0, 0, istZone)))

	// A UTC instant late on the 17th is already the 18th in IST.
	utcEvening := time.Date(2025, time.August, 17, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, TodayPageNumber(utcEvening))

	// One year in.
	assert.Equal(t, 366, TodayPageNumber(time.Date(2026, time.August, 17, 12, 0, 0, 0, istZone)))
}

func TestISTToday(t *testing.T) {
	today := istToday()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
}
