package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodo_IsActive(t *testing.T) {
	assert.True(t, (&Todo{Completed: false}).IsActive())
	assert.False(t, (&Todo{Completed: true}).IsActive())
}

func TestRecurrenceConfig_ValueAndScanRoundTrip(t *testing.T) {
	dom := 15
	cfg := RecurrenceConfig{
		Frequency:  FrequencyMonthly,
		Interval:   2,
		DayOfMonth: &dom,
	}

	raw, err := cfg.Value()
	require.NoError(t, err)

	var scanned RecurrenceConfig
	require.NoError(t, scanned.Scan(raw))

	assert.Equal(t, cfg.Frequency, scanned.Frequency)
	assert.Equal(t, cfg.Interval, scanned.Interval)
	require.NotNil(t, scanned.DayOfMonth)
	assert.Equal(t, *cfg.DayOfMonth, *scanned.DayOfMonth)
}

func TestRecurrenceConfig_ScanNilIsNoop(t *testing.T) {
	var cfg RecurrenceConfig
	assert.NoError(t, cfg.Scan(nil))
}

func TestRecurrenceConfig_ScanRejectsUnsupportedType(t *testing.T) {
	var cfg RecurrenceConfig
	err := cfg.Scan(42)
	assert.Error(t, err)
}
