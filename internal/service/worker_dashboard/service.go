package worker_dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/routine"
	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	wdash "github.com/geekganization/MOUP-sub000/internal/domain/worker_dashboard"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/payday"
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/geekganization/MOUP-sub000/internal/service/earnings"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type WorkerDashboardServiceImpl struct {
	workplaceRepo workplace.Repository
	wageRepo      wage.Repository
	shiftRepo     shift.Repository
	routineRepo   routine.Repository
	calc          *earnings.Calculator
}

func NewWorkerDashboardService(
	workplaceRepo workplace.Repository,
	wageRepo wage.Repository,
	shiftRepo shift.Repository,
	routineRepo routine.Repository,
	calc *earnings.Calculator,
) wdash.Service {
	return &WorkerDashboardServiceImpl{
		workplaceRepo: workplaceRepo,
		wageRepo:      wageRepo,
		shiftRepo:     shiftRepo,
		routineRepo:   routineRepo,
		calc:          calc,
	}
}

// GetDashboard builds the worker-facing month view. All per-workplace
// fetches fan out concurrently and are joined before the totals are summed,
// so the aggregation itself stays synchronous and deterministic.
func (s *WorkerDashboardServiceImpl) GetDashboard(ctx context.Context, workerID string, year, month int) (*wdash.WorkerDashboardResponse, error) {
	workplaces, err := s.workplaceRepo.ListForWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	prevYear, prevMonth := previousMonth(year, month)

	rows := make([]wdash.WorkplaceRow, len(workplaces))
	amounts := make([]decimal.Decimal, len(workplaces))
	prevAmounts := make([]decimal.Decimal, len(workplaces))
	var routineCount int

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.routineRepo.CountForDate(gCtx, workerID, time.Now())
		if err != nil {
			return err
		}
		routineCount = count
		return nil
	})

	for i, wp := range workplaces {
		g.Go(func() error {
			profile, err := s.wageRepo.GetByWorkerAndWorkplace(gCtx, workerID, wp.ID)
			if errors.Is(err, wage.ErrProfileNotFound) {
				// No wage profile yet: the workplace still gets a row, it
				// just contributes nothing to the totals.
				rows[i] = emptyRow(wp)
				amounts[i] = decimal.Zero
				prevAmounts[i] = decimal.Zero
				return nil
			}
			if err != nil {
				return err
			}

			current, err := s.shiftRepo.GetMonthlySummary(gCtx, workerID, wp.ID, year, month)
			if err != nil {
				return err
			}
			previous, err := s.shiftRepo.GetMonthlySummary(gCtx, workerID, wp.ID, prevYear, prevMonth)
			if err != nil {
				return err
			}

			totals := s.calc.MonthTotals(profile, current)
			amounts[i] = totals.Amount
			prevAmounts[i] = s.calc.ComparisonAmount(profile, previous)

			rows[i] = wdash.WorkplaceRow{
				WorkplaceID:     wp.ID,
				WorkplaceName:   wp.Name,
				WageType:        string(profile.WageType),
				NetPay:          totals.Amount,
				WorkedTime:      timeutil.FormatMinutes(totals.WorkedMinutes),
				WorkedMinutes:   totals.WorkedMinutes,
				Payroll:         totals.Payroll,
				DaysUntilPayday: payday.DaysUntil(time.Now(), profile.PayDay),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthlyAmount := decimal.Zero
	previousAmount := decimal.Zero
	for i := range workplaces {
		monthlyAmount = monthlyAmount.Add(amounts[i])
		previousAmount = previousAmount.Add(prevAmounts[i])
	}

	if len(rows) == 0 {
		rows = []wdash.WorkplaceRow{placeholderRow()}
	}

	return &wdash.WorkerDashboardResponse{
		Header: wdash.HeaderResponse{
			MonthlyAmount:     monthlyAmount,
			AmountDifference:  monthlyAmount.Sub(previousAmount),
			TodayRoutineCount: routineCount,
			Year:              year,
			Month:             month,
		},
		Workplaces: rows,
	}, nil
}

func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func emptyRow(wp workplace.Workplace) wdash.WorkplaceRow {
	return wdash.WorkplaceRow{
		WorkplaceID:   wp.ID,
		WorkplaceName: wp.Name,
		NetPay:        decimal.Zero,
		WorkedTime:    timeutil.FormatMinutes(0),
		Payroll:       notItemized(),
	}
}

// placeholderRow is the single well-formed row returned when the worker has
// no workplace yet; an empty dashboard is a state, not an error.
func placeholderRow() wdash.WorkplaceRow {
	return wdash.WorkplaceRow{
		NetPay:      decimal.Zero,
		WorkedTime:  timeutil.FormatMinutes(0),
		Payroll:     notItemized(),
		Placeholder: true,
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
