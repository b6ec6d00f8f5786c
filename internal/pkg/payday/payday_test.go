package payday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestDaysUntil_SameMonth(t *testing.T) {
	// 2026-08-10 -> payday on the 25th
	got := DaysUntil(date(2026, time.August, 10), intPtr(25))
	assert.Equal(t, 15, got)
}

func TestDaysUntil_Today(t *testing.T) {
	got := DaysUntil(date(2026, time.August, 25), intPtr(25))
	assert.Equal(t, 0, got)
}

func TestDaysUntil_RollsToNextMonth(t *testing.T) {
	// 2026-08-26, payday 25 -> next occurrence is 2026-09-25
	got := DaysUntil(date(2026, time.August, 26), intPtr(25))
	assert.Equal(t, 30, got)
}

func TestDaysUntil_ClampsToShortMonth(t *testing.T) {
	// March 31, payday 31 -> today is the payday
	assert.Equal(t, 0, DaysUntil(date(2026, time.March, 31), intPtr(31)))

	// April 1, payday 31 -> April has 30 days, resolves to April 30
	assert.Equal(t, 29, DaysUntil(date(2026, time.April, 1), intPtr(31)))

	// February in a non-leap year clamps to the 28th
	assert.Equal(t, 27, DaysUntil(date(2026, time.February, 1), intPtr(31)))

	// February in a leap year clamps to the 29th
	assert.Equal(t, 28, DaysUntil(date(2028, time.February, 1), intPtr(31)))
}

func TestDaysUntil_DecemberRollsToJanuary(t *testing.T) {
	// 2026-12-30, payday 5 -> 2027-01-05
	got := DaysUntil(date(2026, time.December, 30), intPtr(5))
	assert.Equal(t, 6, got)
}

func TestDaysUntil_NilPayDay(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(date(2026, time.August, 10), nil))
}

func TestDaysUntil_InvalidPayDay(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(date(2026, time.August, 10), intPtr(0)))
	assert.Equal(t, 0, DaysUntil(date(2026, time.August, 10), intPtr(-3)))
}
