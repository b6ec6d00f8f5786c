package worker_dashboard

import (
	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ========== WORKER DASHBOARD ==========

// WorkerDashboardResponse is the worker-facing month view: one row per
// workplace the worker belongs to, each with that workplace's pay and time
// for the worker alone.
type WorkerDashboardResponse struct {
	Header     HeaderResponse `json:"header"`
	Workplaces []WorkplaceRow `json:"workplaces"`
}

// HeaderResponse is the dashboard header summary. AmountDifference is the
// current month total minus the previous month total and may be negative.
type HeaderResponse struct {
	MonthlyAmount     decimal.Decimal `json:"monthly_amount"`
	AmountDifference  decimal.Decimal `json:"amount_difference"`
	TodayRoutineCount int             `json:"today_routine_count"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
}

// WorkplaceRow is the worker's month at one workplace. Placeholder is set
// on the single synthetic row returned when the worker belongs to no
// workplace yet.
type WorkplaceRow struct {
	WorkplaceID     string          `json:"workplace_id"`
	WorkplaceName   string          `json:"workplace_name"`
	WageType        string          `json:"wage_type"`
	NetPay          decimal.Decimal `json:"net_pay"`
	WorkedTime      string          `json:"worked_time"` // "Xh Ym"
	WorkedMinutes   int             `json:"worked_minutes"`
	Payroll         payroll.Result  `json:"payroll"`
	DaysUntilPayday int             `json:"days_until_payday"`
	Placeholder     bool            `json:"placeholder,omitempty"`
}
