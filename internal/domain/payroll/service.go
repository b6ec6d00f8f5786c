package payroll

import (
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/shopspring/decimal"
)

// Calculator computes itemized statutory deductions and net pay. Both
// operations are pure; all state is the injected rate table.
type Calculator interface {
	// CalculatePay itemizes the enabled deductions against a pre-deduction
	// gross amount. Disabled categories contribute zero, not a sentinel.
	CalculatePay(gross decimal.Decimal, settings InsuranceSettings) Result

	// CalculateWorkerPay applies the wage-type rule: hourly profiles are
	// itemized via CalculatePay, fixed profiles bypass time-based
	// computation entirely and net the fixed amount verbatim with every
	// deduction marked not applicable.
	CalculateWorkerPay(profile wage.Profile, gross decimal.Decimal) Result
}
