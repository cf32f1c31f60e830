package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindengine/core/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatRRule_CustomDerivesWeeklyFromDays(t *testing.T) {
	cfg := models.RecurrenceConfig{
		Frequency:  models.FrequencyCustom,
		Interval:   1,
		DaysOfWeek: []string{"WE", "MO", "FR"},
	}
	s, err := FormatRRule(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE,FR", s)
}

func TestFormatRRule_CustomDerivesMonthlyFromDayOfMonth(t *testing.T) {
	dom := 15
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyCustom, Interval: 1, DayOfMonth: &dom}
	s, err := FormatRRule(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=MONTHLY;BYMONTHDAY=15", s)
}

func TestFormatRRule_CustomDefaultsDaily(t *testing.T) {
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyCustom, Interval: 2}
	s, err := FormatRRule(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY;INTERVAL=2", s)
}

func TestFormatRRule_IntervalOneOmitted(t *testing.T) {
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyDaily, Interval: 1}
	s, err := FormatRRule(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY", s)
}

func TestFormatRRule_UntilAndCountMutuallyExclusive(t *testing.T) {
	end := "2026-06-01"
	count := 5
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyDaily, Interval: 1, EndDate: &end, EndCount: &count}
	_, err := FormatRRule(cfg)
	assert.ErrorIs(t, err, ErrUntilAndCount)
}

func TestFormatRRule_UntilFormat(t *testing.T) {
	end := "2026-06-01"
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyWeekly, Interval: 1, EndDate: &end}
	s, err := FormatRRule(cfg)
	require.NoError(t, err)
	assert.Equal(t, "FREQ=WEEKLY;UNTIL=20260601", s)
}

// TestEnumerate_WeeklyMWF is scenario 1 from spec.md §8: weekly MWF starting
// Monday 2026-01-05, window top-up 30 days, yields every MWF date within
// the inclusive window [anchor, anchor+30d] — that's all of January's MWF
// dates plus the two that fall in the first days of February.
func TestEnumerate_WeeklyMWF(t *testing.T) {
	anchor := date("2026-01-05")
	cfg := models.RecurrenceConfig{
		Frequency:  models.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []string{"MO", "WE", "FR"},
	}
	ruleStr, err := FormatRRule(cfg)
	require.NoError(t, err)

	windowEnd := anchor.AddDate(0, 0, 30)
	dates, err := Enumerate(ruleStr, anchor, anchor, windowEnd, 30)
	require.NoError(t, err)

	want := []string{
		"2026-01-05", "2026-01-07", "2026-01-09", "2026-01-12", "2026-01-14",
		"2026-01-16", "2026-01-19", "2026-01-21", "2026-01-23", "2026-01-26",
		"2026-01-28", "2026-01-30", "2026-02-02", "2026-02-04",
	}
	require.Len(t, dates, len(want))
	for i, w := range want {
		assert.True(t, dates[i].Equal(date(w)), "index %d: got %v want %v", i, dates[i], date(w))
	}
}

func TestEnumerate_RespectsCap(t *testing.T) {
	anchor := date("2026-01-01")
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyDaily, Interval: 1}
	ruleStr, err := FormatRRule(cfg)
	require.NoError(t, err)

	dates, err := Enumerate(ruleStr, anchor, anchor, anchor.AddDate(1, 0, 0), 5)
	require.NoError(t, err)
	assert.Len(t, dates, 5)
}

func TestEnumerate_NonDecreasing(t *testing.T) {
	anchor := date("2026-03-01")
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyMonthly, Interval: 1}
	ruleStr, err := FormatRRule(cfg)
	require.NoError(t, err)

	dates, err := Enumerate(ruleStr, anchor, anchor, anchor.AddDate(1, 0, 0), 12)
	require.NoError(t, err)
	for i := 1; i < len(dates); i++ {
		assert.False(t, dates[i].Before(dates[i-1]))
	}
}

func TestNextAfter(t *testing.T) {
	anchor := date("2026-01-05")
	cfg := models.RecurrenceConfig{
		Frequency:  models.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []string{"MO", "WE", "FR"},
	}
	ruleStr, err := FormatRRule(cfg)
	require.NoError(t, err)

	next, err := NextAfter(ruleStr, anchor, date("2026-01-05"))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, next.Equal(date("2026-01-07")))
}

func TestNextAfter_Exhausted(t *testing.T) {
	anchor := date("2026-01-01")
	count := 2
	cfg := models.RecurrenceConfig{Frequency: models.FrequencyDaily, Interval: 1, EndCount: &count}
	ruleStr, err := FormatRRule(cfg)
	require.NoError(t, err)

	next, err := NextAfter(ruleStr, anchor, date("2026-01-10"))
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("FREQ=DAILY;INTERVAL=2"))
	assert.False(t, Validate("NOT;A=VALID=RULE"))
}
