package trends_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feedback-analyzer/trends"
)

func TestBucketKeys(t *testing.T) {
	date := time.Date(2025, 4, 7, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-04-07", trends.DayKey(date))
	assert.Equal(t, "2025-W15", trends.WeekKey(date))
	assert.Equal(t, "2025-04", trends.MonthKey(date))
}

func TestWeekKeyUsesISOWeekYear(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	date := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W01", trends.WeekKey(date))

	// 2021-01-01 is a Friday belonging to ISO week 53 of 2020.
	date = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-W53", trends.WeekKey(date))
}

func TestTrackerRegistersZeroCountBuckets(t *testing.T) {
	tracker := trends.NewTracker()
	tracker.Register(time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC))

	series := tracker.Series()
	assert.Equal(t, []string{"2025-04-07"}, series.ByDay.Labels)
	assert.Equal(t, []int{0}, series.ByDay.Positive)
	assert.Equal(t, []int{0}, series.ByDay.Negative)
	assert.Equal(t, []string{"2025-W15"}, series.ByWeek.Labels)
	assert.Equal(t, []string{"2025-04"}, series.ByMonth.Labels)
}

func TestTrackerAccumulatesAndSorts(t *testing.T) {
	tracker := trends.NewTracker()
	day2 := time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC)

	// Out-of-order input; labels must come back sorted.
	tracker.Add(day2, "negative")
	tracker.Add(day1, "positive")
	tracker.Add(day1, "positive")
	tracker.Add(day1, "neutral")

	series := tracker.Series()
	assert.Equal(t, []string{"2025-04-07", "2025-04-08"}, series.ByDay.Labels)
	assert.Equal(t, []int{2, 0}, series.ByDay.Positive)
	assert.Equal(t, []int{0, 1}, series.ByDay.Negative)

	// Same ISO week: counters collapse into one bucket.
	assert.Equal(t, []string{"2025-W15"}, series.ByWeek.Labels)
	assert.Equal(t, []int{2}, series.ByWeek.Positive)
	assert.Equal(t, []int{1}, series.ByWeek.Negative)
}

func TestSameDayRecordsShareOneBucket(t *testing.T) {
	tracker := trends.NewTracker()
	morning := time.Date(2025, 4, 7, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 4, 7, 20, 0, 0, 0, time.UTC)

	tracker.Register(morning)
	tracker.Register(evening)
	tracker.Add(evening, "positive")

	series := tracker.Series()
	assert.Len(t, series.ByDay.Labels, 1)
	assert.Equal(t, []int{1}, series.ByDay.Positive)
}
