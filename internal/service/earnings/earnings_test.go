package earnings

import (
	"testing"

	domain "github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/worktime"
	payrollService "github.com/geekganization/MOUP-sub000/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestCalculator() *Calculator {
	rates := domain.Rates{
		EmploymentInsurance: decimal.RequireFromString("0.9"),
		HealthInsurance:     decimal.RequireFromString("3.545"),
		IndustrialAccident:  decimal.RequireFromString("0.7"),
		NationalPension:     decimal.RequireFromString("4.5"),
		IncomeTax:           decimal.RequireFromString("3.3"),
	}
	return NewCalculator(
		worktime.Window{Start: 22 * 60, End: 6 * 60},
		decimal.RequireFromString("1.5"),
		payrollService.NewCalculator(rates),
		nil,
	)
}

func hourlyProfile(rate int64, nightAllowance bool) wage.Profile {
	return wage.Profile{
		WageType:              wage.WageTypeHourly,
		WageAmount:            decimal.NewFromInt(rate),
		NightAllowanceEnabled: nightAllowance,
	}
}

func fixedProfile(amount int64) wage.Profile {
	return wage.Profile{
		WageType:   wage.WageTypeFixed,
		WageAmount: decimal.NewFromInt(amount),
	}
}

func summary(events ...shift.Event) shift.MonthlySummary {
	return shift.MonthlySummary{Year: 2026, Month: 8, Events: events}
}

func TestMonthTotals_HourlyDayShift(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.MonthTotals(hourlyProfile(10000, false), summary(
		shift.Event{StartTime: "09:00", EndTime: "18:00"},
	))

	// 9h day work at 10000/h = 90000 gross, income tax 3.3% = 2970
	assert.Equal(t, 540, totals.WorkedMinutes)
	assert.Equal(t, "87030", totals.Amount.String())
	assert.Equal(t, "2970", totals.Payroll.IncomeTax.Amount.String())
	assert.Zero(t, totals.SkippedShifts)
}

func TestMonthTotals_NightAllowanceMultiplier(t *testing.T) {
	calc := newTestCalculator()

	// 22:00 -> 02:00 is 4h entirely inside the night window.
	with := calc.MonthTotals(hourlyProfile(10000, true), summary(
		shift.Event{StartTime: "22:00", EndTime: "02:00"},
	))
	without := calc.MonthTotals(hourlyProfile(10000, false), summary(
		shift.Event{StartTime: "22:00", EndTime: "02:00"},
	))

	// gross 60000 vs 40000; only income tax applies with no enrollments
	assert.Equal(t, "58020", with.Amount.String())
	assert.Equal(t, "38680", without.Amount.String())
	assert.Equal(t, 240, with.WorkedMinutes)
}

func TestMonthTotals_ShiftSpanningBothBoundaries(t *testing.T) {
	calc := newTestCalculator()

	// 18:00 -> 08:00: 6h day + 8h night
	totals := calc.MonthTotals(hourlyProfile(6000, true), summary(
		shift.Event{StartTime: "18:00", EndTime: "08:00"},
	))

	// day 6h * 6000 = 36000; night 8h * 9000 = 72000; gross 108000
	// income tax 3.3% = 3564
	assert.Equal(t, 840, totals.WorkedMinutes)
	assert.Equal(t, "104436", totals.Amount.String())
}

func TestMonthTotals_UnparsableShiftSkippedNotFatal(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.MonthTotals(hourlyProfile(10000, false), summary(
		shift.Event{ID: "bad", StartTime: "9am", EndTime: "18:00"},
		shift.Event{StartTime: "09:00", EndTime: "18:00"},
		shift.Event{ID: "bad2", StartTime: "09:00", EndTime: "24:30"},
	))

	assert.Equal(t, 2, totals.SkippedShifts)
	assert.Equal(t, 540, totals.WorkedMinutes)
	assert.Equal(t, "87030", totals.Amount.String())
}

func TestMonthTotals_EmptyMonthIsValid(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.MonthTotals(hourlyProfile(10000, false), summary())
	assert.True(t, totals.Amount.IsZero())
	assert.Zero(t, totals.WorkedMinutes)
	assert.Zero(t, totals.SkippedShifts)
}

func TestMonthTotals_FixedUnconditional(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.MonthTotals(fixedProfile(2_000_000), summary())
	assert.Equal(t, "2000000", totals.Amount.String())
	assert.False(t, totals.Payroll.NationalPension.Applicable)
	assert.Equal(t, "2000000", totals.Payroll.NetPay.String())
	assert.Zero(t, totals.WorkedMinutes)
}

func TestMonthTotals_FixedAccumulatesMinutesForDisplay(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.MonthTotals(fixedProfile(2_000_000), summary(
		shift.Event{StartTime: "09:00", EndTime: "18:00"},
		shift.Event{StartTime: "23:00", EndTime: "01:00"},
	))
	assert.Equal(t, "2000000", totals.Amount.String())
	assert.Equal(t, 660, totals.WorkedMinutes)
}

func TestComparisonAmount_FixedExcludedWithoutShifts(t *testing.T) {
	calc := newTestCalculator()
	profile := fixedProfile(2_000_000)

	// No shifts last month: nothing in the baseline...
	assert.True(t, calc.ComparisonAmount(profile, summary()).IsZero())

	// ...but any recorded shift counts the full amount.
	got := calc.ComparisonAmount(profile, summary(
		shift.Event{StartTime: "09:00", EndTime: "12:00"},
	))
	assert.Equal(t, "2000000", got.String())

	// The current-month side stays unconditional regardless.
	assert.Equal(t, "2000000", calc.MonthTotals(profile, summary()).Amount.String())
}

func TestComparisonAmount_HourlyMatchesMonthTotals(t *testing.T) {
	calc := newTestCalculator()
	profile := hourlyProfile(10000, false)
	s := summary(shift.Event{StartTime: "09:00", EndTime: "18:00"})

	assert.Equal(t,
		calc.MonthTotals(profile, s).Amount.String(),
		calc.ComparisonAmount(profile, s).String())
}

func TestMonthTotals_Deterministic(t *testing.T) {
	calc := newTestCalculator()
	profile := hourlyProfile(9860, true)
	s := summary(
		shift.Event{StartTime: "18:00", EndTime: "08:00"},
		shift.Event{StartTime: "21:30", EndTime: "03:15"},
		shift.Event{StartTime: "07:45", EndTime: "16:10"},
	)

	first := calc.MonthTotals(profile, s)
	second := calc.MonthTotals(profile, s)
	assert.Equal(t, first.Amount.String(), second.Amount.String())
	assert.Equal(t, first.Payroll.NetPay.String(), second.Payroll.NetPay.String())
	assert.Equal(t, first.WorkedMinutes, second.WorkedMinutes)
}
