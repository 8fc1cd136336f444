package trends

import (
	"fmt"
	"sort"
	"time"

	"feedback-analyzer/dto"
	"feedback-analyzer/sentiment"
)

// DayKey returns the ISO calendar date of t, e.g. "2025-04-07".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the ISO-8601 week of t, e.g. "2025-W15". Both the
// year and the week number come from the ISO week-numbering calendar,
// so dates around New Year land in the week-year they belong to.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the calendar month of t, e.g. "2025-04".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

type counts struct {
	positive int
	negative int
}

// Tracker accumulates positive/negative counts per day, week and month
// bucket. Register must be called for every date touched so trend
// series include zero-count periods that saw feedback but no strong
// sentiment.
type Tracker struct {
	byDay   map[string]*counts
	byWeek  map[string]*counts
	byMonth map[string]*counts
}

func NewTracker() *Tracker {
	return &Tracker{
		byDay:   map[string]*counts{},
		byWeek:  map[string]*counts{},
		byMonth: map[string]*counts{},
	}
}

// Register ensures zero-count buckets exist for the date in all three
// granularities.
func (t *Tracker) Register(date time.Time) {
	ensure(t.byDay, DayKey(date))
	ensure(t.byWeek, WeekKey(date))
	ensure(t.byMonth, MonthKey(date))
}

// Add increments the bucket counters for the date. Labels other than
// positive/negative contribute to neither counter, but the buckets are
// still registered.
func (t *Tracker) Add(date time.Time, label string) {
	day := ensure(t.byDay, DayKey(date))
	week := ensure(t.byWeek, WeekKey(date))
	month := ensure(t.byMonth, MonthKey(date))

	switch label {
	case sentiment.LabelPositive:
		day.positive++
		week.positive++
		month.positive++
	case sentiment.LabelNegative:
		day.negative++
		week.negative++
		month.negative++
	}
}

// Series renders the three trend series with labels sorted ascending.
// Lexicographic order is chronological for these key formats.
func (t *Tracker) Series() dto.FeedbackTrends {
	return dto.FeedbackTrends{
		ByDay:   series(t.byDay),
		ByWeek:  series(t.byWeek),
		ByMonth: series(t.byMonth),
	}
}

func ensure(m map[string]*counts, key string) *counts {
	if c, ok := m[key]; ok {
		return c
	}
	c := &counts{}
	m[key] = c
	return c
}

func series(m map[string]*counts) dto.TimelineTrend {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	trend := dto.TimelineTrend{
		Labels:   labels,
		Positive: make([]int, len(labels)),
		Negative: make([]int, len(labels)),
	}
	for i, k := range labels {
		trend.Positive[i] = m[k].positive
		trend.Negative[i] = m[k].negative
	}
	return trend
}
