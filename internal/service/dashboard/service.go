package dashboard

import (
	"context"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/dashboard"
	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/routine"
	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/payday"
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/geekganization/MOUP-sub000/internal/service/earnings"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	workplaceRepo workplace.Repository
	shiftRepo     shift.Repository
	routineRepo   routine.Repository
	calc          *earnings.Calculator
}

func NewDashboardService(
	workplaceRepo workplace.Repository,
	shiftRepo shift.Repository,
	routineRepo routine.Repository,
	calc *earnings.Calculator,
) dashboard.Service {
	return &DashboardServiceImpl{
		workplaceRepo: workplaceRepo,
		shiftRepo:     shiftRepo,
		routineRepo:   routineRepo,
		calc:          calc,
	}
}

// workplaceTotals carries one workplace's joined fan-out result until the
// final synchronous summation.
type workplaceTotals struct {
	row        dashboard.WorkplaceRow
	amount     decimal.Decimal
	prevAmount decimal.Decimal
}

// GetDashboard builds the owner-facing month view: every operated workplace
// with a nested per-worker breakdown. Worker cells go through the same
// earnings calculator as the worker dashboard, so both views always agree
// on the same underlying shift.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, ownerID string, year, month int) (*dashboard.OwnerDashboardResponse, error) {
	workplaces, err := s.workplaceRepo.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	totals := make([]workplaceTotals, len(workplaces))
	var routineCount int

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.routineRepo.CountForDate(gCtx, ownerID, time.Now())
		if err != nil {
			return err
		}
		routineCount = count
		return nil
	})

	for i, wp := range workplaces {
		g.Go(func() error {
			wpTotals, err := s.aggregateWorkplace(gCtx, wp, year, month)
			if err != nil {
				return err
			}
			totals[i] = wpTotals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthlyAmount := decimal.Zero
	previousAmount := decimal.Zero
	rows := make([]dashboard.WorkplaceRow, len(totals))
	for i, t := range totals {
		monthlyAmount = monthlyAmount.Add(t.amount)
		previousAmount = previousAmount.Add(t.prevAmount)
		rows[i] = t.row
	}

	if len(rows) == 0 {
		rows = []dashboard.WorkplaceRow{placeholderRow()}
	}

	return &dashboard.OwnerDashboardResponse{
		Header: dashboard.HeaderResponse{
			MonthlyAmount:     monthlyAmount,
			AmountDifference:  monthlyAmount.Sub(previousAmount),
			TodayRoutineCount: routineCount,
			Year:              year,
			Month:             month,
		},
		Workplaces: rows,
	}, nil
}

// aggregateWorkplace fans out the per-member summary fetches for one
// workplace, joins them, and folds the cells into the workplace row.
func (s *DashboardServiceImpl) aggregateWorkplace(ctx context.Context, wp workplace.Workplace, year, month int) (workplaceTotals, error) {
	members, err := s.workplaceRepo.ListMembers(ctx, wp.ID)
	if err != nil {
		return workplaceTotals{}, err
	}

	prevYear, prevMonth := previousMonth(year, month)

	cells := make([]dashboard.WorkerCell, len(members))
	amounts := make([]decimal.Decimal, len(members))
	prevAmounts := make([]decimal.Decimal, len(members))

	g, gCtx := errgroup.WithContext(ctx)
	for i, m := range members {
		g.Go(func() error {
			if m.Profile == nil {
				// Worker without a registered wage profile contributes zero.
				cells[i] = emptyCell(m)
				amounts[i] = decimal.Zero
				prevAmounts[i] = decimal.Zero
				return nil
			}

			current, err := s.shiftRepo.GetMonthlySummary(gCtx, m.WorkerID, wp.ID, year, month)
			if err != nil {
				return err
			}
			previous, err := s.shiftRepo.GetMonthlySummary(gCtx, m.WorkerID, wp.ID, prevYear, prevMonth)
			if err != nil {
				return err
			}

			monthTotals := s.calc.MonthTotals(*m.Profile, current)
			amounts[i] = monthTotals.Amount
			prevAmounts[i] = s.calc.ComparisonAmount(*m.Profile, previous)

			cells[i] = dashboard.WorkerCell{
				WorkerID:        m.WorkerID,
				Nickname:        m.Nickname,
				WageType:        string(m.Profile.WageType),
				NetPay:          monthTotals.Amount,
				WorkedTime:      timeutil.FormatMinutes(monthTotals.WorkedMinutes),
				WorkedMinutes:   monthTotals.WorkedMinutes,
				Payroll:         monthTotals.Payroll,
				DaysUntilPayday: payday.DaysUntil(time.Now(), m.Profile.PayDay),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return workplaceTotals{}, err
	}

	amount := decimal.Zero
	prevAmount := decimal.Zero
	workedMinutes := 0
	for i := range members {
		amount = amount.Add(amounts[i])
		prevAmount = prevAmount.Add(prevAmounts[i])
		workedMinutes += cells[i].WorkedMinutes
	}

	return workplaceTotals{
		row: dashboard.WorkplaceRow{
			WorkplaceID:   wp.ID,
			WorkplaceName: wp.Name,
			MonthlyAmount: amount,
			WorkedTime:    timeutil.FormatMinutes(workedMinutes),
			WorkedMinutes: workedMinutes,
			Workers:       cells,
		},
		amount:     amount,
		prevAmount: prevAmount,
	}, nil
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func emptyCell(m workplace.Member) dashboard.WorkerCell {
	return dashboard.WorkerCell{
		WorkerID:   m.WorkerID,
		Nickname:   m.Nickname,
		NetPay:     decimal.Zero,
		WorkedTime: timeutil.FormatMinutes(0),
		Payroll:    notItemized(),
	}
}

// placeholderRow is the single well-formed row returned when the owner
// operates no workplace yet; an empty dashboard is a state, not an error.
func placeholderRow() dashboard.WorkplaceRow {
	return dashboard.WorkplaceRow{
		MonthlyAmount: decimal.Zero,
		WorkedTime:    timeutil.FormatMinutes(0),
		Workers:       []dashboard.WorkerCell{},
		Placeholder:   true,
	}
}

func notItemized() payroll.Result {
	return payroll.Result{
		EmploymentInsurance: payroll.NotApplicable(),
		HealthInsurance:     payroll.NotApplicable(),
		IndustrialAccident:  payroll.NotApplicable(),
		NationalPension:     payroll.NotApplicable(),
		IncomeTax:           payroll.NotApplicable(),
		NetPay:              decimal.Zero,
	}
}
