package dashboard

import (
	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ========== OWNER DASHBOARD ==========

// OwnerDashboardResponse is the owner-facing month view: one row per
// operated workplace, each aggregating every worker at that workplace.
type OwnerDashboardResponse struct {
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

// WorkplaceRow aggregates one workplace for the requested month. Placeholder
// is set on the single synthetic row returned when the owner operates no
// workplaces yet.
type WorkplaceRow struct {
	WorkplaceID   string          `json:"workplace_id"`
	WorkplaceName string          `json:"workplace_name"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	WorkedTime    string          `json:"worked_time"` // "Xh Ym"
	WorkedMinutes int             `json:"worked_minutes"`
	Workers       []WorkerCell    `json:"workers"`
	Placeholder   bool            `json:"placeholder,omitempty"`
}

// WorkerCell is one worker's month at one workplace.
type WorkerCell struct {
	WorkerID        string          `json:"worker_id"`
	Nickname        string          `json:"nickname"`
	WageType        string          `json:"wage_type"`
	NetPay          decimal.Decimal `json:"net_pay"`
	WorkedTime      string          `json:"worked_time"`
	WorkedMinutes   int             `json:"worked_minutes"`
	Payroll         payroll.Result  `json:"payroll"`
	DaysUntilPayday int             `json:"days_until_payday"`
}
