package payroll

import (
	"github.com/shopspring/decimal"
)

// Rates holds the statutory deduction rates as percents of gross pay.
// They are injected from configuration per jurisdiction; the calculation
// code never hard-codes them.
type Rates struct {
	EmploymentInsurance decimal.Decimal
	HealthInsurance     decimal.Decimal
	IndustrialAccident  decimal.Decimal
	NationalPension     decimal.Decimal
	IncomeTax           decimal.Decimal
}

// InsuranceSettings records which statutory insurances a worker is enrolled
// in at a workplace. The four flags are independent.
type InsuranceSettings struct {
	EmploymentInsurance bool `json:"employment_insurance"`
	HealthInsurance     bool `json:"health_insurance"`
	IndustrialAccident  bool `json:"industrial_accident"`
	NationalPension     bool `json:"national_pension"`
}

// Deduction is an explicit applicable/not-applicable amount. Fixed-wage
// workers are not itemized, so their deduction fields carry NotApplicable
// instead of a magic negative number; the historical -1 only survives on
// the wire for client compatibility.
type Deduction struct {
	Applicable bool
	Amount     decimal.Decimal
}

func Applicable(amount decimal.Decimal) Deduction {
	return Deduction{Applicable: true, Amount: amount}
}

func NotApplicable() Deduction {
	return Deduction{}
}

// MarshalJSON emits the amount, or -1 when the deduction is not applicable.
func (d Deduction) MarshalJSON() ([]byte, error) {
	if !d.Applicable {
		return []byte("-1"), nil
	}
	return []byte(d.Amount.String()), nil
}

// Result is the itemized outcome of a payroll computation, in whole
// currency units.
type Result struct {
	EmploymentInsurance Deduction       `json:"employment_insurance"`
	HealthInsurance     Deduction       `json:"health_insurance"`
	IndustrialAccident  Deduction       `json:"industrial_accident"`
	NationalPension     Deduction       `json:"national_pension"`
	IncomeTax           Deduction       `json:"income_tax"`
	NetPay              decimal.Decimal `json:"net_pay"`
}

// Add accumulates another result into r category by category. A category is
// applicable in the sum when it is applicable in either operand.
func (r Result) Add(other Result) Result {
	return Result{
		EmploymentInsurance: addDeduction(r.EmploymentInsurance, other.EmploymentInsurance),
		HealthInsurance:     addDeduction(r.HealthInsurance, other.HealthInsurance),
		IndustrialAccident:  addDeduction(r.IndustrialAccident, other.IndustrialAccident),
		NationalPension:     addDeduction(r.NationalPension, other.NationalPension),
		IncomeTax:           addDeduction(r.IncomeTax, other.IncomeTax),
		NetPay:              r.NetPay.Add(other.NetPay),
	}
}

func addDeduction(a, b Deduction) Deduction {
	if !a.Applicable && !b.Applicable {
		return NotApplicable()
	}
	return Applicable(a.Amount.Add(b.Amount))
}
