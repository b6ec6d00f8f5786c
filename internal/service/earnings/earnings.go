// Package earnings is the single computation path that turns a worker's
// monthly shift summary and wage profile into pay and worked-time totals.
// Both the owner-facing and the worker-facing dashboards go through this
// calculator so the two views can never disagree about the same shift.
package earnings

import (
	"log/slog"

	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/worktime"
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Calculator combines the injected night window, night-allowance multiplier
// and payroll calculator. It is stateless and safe for concurrent use.
type Calculator struct {
	window     worktime.Window
	multiplier decimal.Decimal
	payroll    payroll.Calculator
	logger     *slog.Logger
}

func NewCalculator(window worktime.Window, nightMultiplier decimal.Decimal, payrollCalc payroll.Calculator, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		window:     window,
		multiplier: nightMultiplier,
		payroll:    payrollCalc,
		logger:     logger,
	}
}

// MonthTotals is one worker's aggregated month at one workplace.
type MonthTotals struct {
	Amount        decimal.Decimal // net pay for hourly, fixed amount for fixed
	WorkedMinutes int
	Payroll       payroll.Result
	SkippedShifts int
}

// MonthTotals aggregates a monthly summary against a wage profile.
//
// Hourly profiles run every shift through the day/night split and the
// payroll calculator, accumulating net pay and elapsed minutes. Shifts with
// unparsable clock times are skipped and logged; they never abort the month.
//
// Fixed profiles bypass time-based pay entirely: the fixed amount counts
// unconditionally and deductions are not itemized. Elapsed minutes are
// still accumulated for display.
func (c *Calculator) MonthTotals(profile wage.Profile, summary shift.MonthlySummary) MonthTotals {
	if profile.WageType == wage.WageTypeFixed {
		result := c.payroll.CalculateWorkerPay(profile, decimal.Zero)
		totals := MonthTotals{
			Amount:  profile.WageAmount,
			Payroll: result,
		}
		for _, ev := range summary.Events {
			minutes, ok := c.elapsedMinutes(ev)
			if !ok {
				totals.SkippedShifts++
				continue
			}
			totals.WorkedMinutes += minutes
		}
		return totals
	}

	totals := MonthTotals{
		Amount: decimal.Zero,
		Payroll: payroll.Result{
			EmploymentInsurance: payroll.Applicable(decimal.Zero),
			HealthInsurance:     payroll.Applicable(decimal.Zero),
			IndustrialAccident:  payroll.Applicable(decimal.Zero),
			NationalPension:     payroll.Applicable(decimal.Zero),
			IncomeTax:           payroll.Applicable(decimal.Zero),
			NetPay:              decimal.Zero,
		},
	}
	for _, ev := range summary.Events {
		result, minutes, ok := c.shiftPay(profile, ev)
		if !ok {
			totals.SkippedShifts++
			continue
		}
		totals.Amount = totals.Amount.Add(result.NetPay)
		totals.WorkedMinutes += minutes
		totals.Payroll = totals.Payroll.Add(result)
	}
	return totals
}

// ComparisonAmount is the previous-month baseline for the month-over-month
// delta. It differs from MonthTotals in one deliberate asymmetry: a
// fixed-wage worker with no recorded shift that month contributes nothing,
// so a worker who joined mid-month does not inflate the baseline. Presence
// is assumed going forward, never backdated.
func (c *Calculator) ComparisonAmount(profile wage.Profile, summary shift.MonthlySummary) decimal.Decimal {
	if profile.WageType == wage.WageTypeFixed {
		if len(summary.Events) == 0 {
			return decimal.Zero
		}
		return profile.WageAmount
	}
	return c.MonthTotals(profile, summary).Amount
}

// shiftPay computes one hourly shift: day/night minute split, gross at the
// wage rate with the night multiplier on night minutes, truncated to a
// whole currency unit, then itemized deductions. Returns ok=false when the
// shift's clock times cannot be parsed.
func (c *Calculator) shiftPay(profile wage.Profile, ev shift.Event) (payroll.Result, int, bool) {
	start, end, ok := c.parseTimes(ev)
	if !ok {
		return payroll.Result{}, 0, false
	}

	split, err := worktime.SplitShift(start, end, c.window)
	if err != nil {
		c.logger.Warn("skipping shift with invalid minute range",
			slog.String("shift_id", ev.ID),
			slog.String("error", err.Error()))
		return payroll.Result{}, 0, false
	}

	dayPay := profile.WageAmount.
		Mul(decimal.NewFromInt(int64(split.DayMinutes))).
		Div(sixty)
	nightRate := profile.WageAmount
	if profile.NightAllowanceEnabled {
		nightRate = nightRate.Mul(c.multiplier)
	}
	nightPay := nightRate.
		Mul(decimal.NewFromInt(int64(split.NightMinutes))).
		Div(sixty)

	gross := dayPay.Add(nightPay).Truncate(0)

	return c.payroll.CalculateWorkerPay(profile, gross), split.DayMinutes + split.NightMinutes, true
}

func (c *Calculator) elapsedMinutes(ev shift.Event) (int, bool) {
	start, end, ok := c.parseTimes(ev)
	if !ok {
		return 0, false
	}
	return worktime.TotalMinutes(start, end), true
}

func (c *Calculator) parseTimes(ev shift.Event) (start, end int, ok bool) {
	start, err := timeutil.ParseClock(ev.StartTime)
	if err != nil {
		c.logger.Warn("skipping shift with unparsable start time",
			slog.String("shift_id", ev.ID),
			slog.String("start_time", ev.StartTime))
		return 0, 0, false
	}
	end, err = timeutil.ParseClock(ev.EndTime)
	if err != nil {
		c.logger.Warn("skipping shift with unparsable end time",
			slog.String("shift_id", ev.ID),
			slog.String("end_time", ev.EndTime))
		return 0, 0, false
	}
	return start, end, true
}
