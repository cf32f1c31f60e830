// Package recurrence is the Recurrence Evaluator: it formats a user-facing
// recurrence configuration into an RFC 5545 RRULE string and answers
// occurrence-enumeration questions against it. It does no I/O and is safe
// for concurrent use, since every exported function takes its inputs as
// arguments and returns fresh values.
package recurrence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/remindengine/core/internal/models"
)

// DefaultEnumerationCap is applied by Enumerate when the caller passes a
// non-positive cap.
const DefaultEnumerationCap = 30

// ErrUntilAndCount is returned when a config sets both an end date and an
// end count, which RFC 5545 forbids.
var ErrUntilAndCount = fmt.Errorf("recurrence: end_date and end_count are mutually exclusive")

// FormatRRule deterministically derives an RFC 5545 RRULE string from a
// RecurrenceConfig anchored at the series' start date.
//
// For FrequencyCustom, the base frequency is derived from the other
// options: a weekday set implies WEEKLY, a day-of-month implies MONTHLY,
// otherwise DAILY. INTERVAL is omitted when it is 1 (the RFC 5545 default).
func FormatRRule(cfg models.RecurrenceConfig) (string, error) {
	if cfg.EndDate != nil && cfg.EndCount != nil {
		return "", ErrUntilAndCount
	}

	freq := strings.ToUpper(string(cfg.Frequency))
	if cfg.Frequency == models.FrequencyCustom {
		switch {
		case len(cfg.DaysOfWeek) > 0:
			freq = "WEEKLY"
		case cfg.DayOfMonth != nil:
			freq = "MONTHLY"
		default:
			freq = "DAILY"
		}
	}

	parts := []string{"FREQ=" + freq}

	if cfg.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(cfg.Interval))
	}

	if len(cfg.DaysOfWeek) > 0 {
		days := make([]string, len(cfg.DaysOfWeek))
		copy(days, cfg.DaysOfWeek)
		sort.Slice(days, func(i, j int) bool {
			return weekdayOrder(days[i]) < weekdayOrder(days[j])
		})
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}

	if cfg.DayOfMonth != nil {
		parts = append(parts, "BYMONTHDAY="+strconv.Itoa(*cfg.DayOfMonth))
	}

	if cfg.EndDate != nil {
		t, err := time.Parse("2006-01-02", *cfg.EndDate)
		if err != nil {
			return "", fmt.Errorf("recurrence: invalid end_date %q: %w", *cfg.EndDate, err)
		}
		parts = append(parts, "UNTIL="+t.Format("20060102"))
	}

	if cfg.EndCount != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*cfg.EndCount))
	}

	return strings.Join(parts, ";"), nil
}

var weekdayIndex = map[string]int{"MO": 0, "TU": 1, "WE": 2, "TH": 3, "FR": 4, "SA": 5, "SU": 6}

func weekdayOrder(day string) int {
	if i, ok := weekdayIndex[day]; ok {
		return i
	}
	return len(weekdayIndex)
}

// parse builds a *rrule.RRule from an RFC 5545 RRULE string anchored at
// anchor, truncated to a calendar date (time-of-day is not part of an
// occurrence per spec).
func parse(ruleStr string, anchor time.Time) (*rrule.RRule, error) {
	dtstart := truncateToDate(anchor)
	r, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("recurrence: invalid rrule %q: %w", ruleStr, err)
	}
	r.DTStart(dtstart)
	return r, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Enumerate returns the ordered occurrence dates of ruleStr (anchored at
// anchor) falling within [windowStart, windowEnd], never more than cap
// entries. cap <= 0 means DefaultEnumerationCap.
func Enumerate(ruleStr string, anchor, windowStart, windowEnd time.Time, cap int) ([]time.Time, error) {
	if cap <= 0 {
		cap = DefaultEnumerationCap
	}

	r, err := parse(ruleStr, anchor)
	if err != nil {
		return nil, err
	}

	start := truncateToDate(windowStart)
	end := truncateToDate(windowEnd)

	all := r.Between(start, end, true)

	dates := make([]time.Time, 0, len(all))
	for _, d := range all {
		d = truncateToDate(d)
		if d.Before(start) {
			continue
		}
		dates = append(dates, d)
		if len(dates) >= cap {
			break
		}
	}
	return dates, nil
}

// NextAfter returns the smallest occurrence of ruleStr strictly after
// refDate, or nil if the rule is exhausted.
func NextAfter(ruleStr string, anchor, refDate time.Time) (*time.Time, error) {
	r, err := parse(ruleStr, anchor)
	if err != nil {
		return nil, err
	}
	next := r.After(truncateToDate(refDate), false)
	if next.IsZero() {
		return nil, nil
	}
	d := truncateToDate(next)
	return &d, nil
}

// Validate reports whether ruleStr is a parseable RRULE string.
func Validate(ruleStr string) bool {
	_, err := rrule.StrToRRule(ruleStr)
	return err == nil
}
