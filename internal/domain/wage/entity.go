package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

// WageType distinguishes hourly-rated workers from fixed monthly salaries.
type WageType string

const (
	WageTypeHourly WageType = "hourly"
	WageTypeFixed  WageType = "fixed"
)

var WageTypeValues = []string{
	string(WageTypeHourly),
	string(WageTypeFixed),
}

// InsuranceEnrollment mirrors payroll.InsuranceSettings at the persistence
// boundary: which of the four statutory insurances the membership enrolled.
type InsuranceEnrollment struct {
	EmploymentInsurance bool
	HealthInsurance     bool
	IndustrialAccident  bool
	NationalPension     bool
}

// Profile describes how one worker is paid at one workplace. It is owned by
// the worker-workplace membership, mutated only through the register/update
// flows, and read-only to the computation engine.
type Profile struct {
	ID                    string
	WorkerID              string
	WorkplaceID           string
	WageType              WageType
	WageAmount            decimal.Decimal // hourly rate or fixed monthly amount, whole currency units
	NightAllowanceEnabled bool
	PayDay                *int // day of month 1-31, nil when not configured
	Insurance             InsuranceEnrollment
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
