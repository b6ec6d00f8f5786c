package payroll

import (
	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/shopspring/decimal"
)

type CalculatorImpl struct {
	rates payroll.Rates
}

func NewCalculator(rates payroll.Rates) payroll.Calculator {
	return &CalculatorImpl{rates: rates}
}

// CalculatePay itemizes statutory deductions for one gross amount. Each
// enabled category is its configured percent of gross, truncated to a whole
// currency unit; disabled categories contribute zero. Income tax has no
// enrollment flag and is always withheld. Net pay is gross minus the sum of
// everything withheld.
func (c *CalculatorImpl) CalculatePay(gross decimal.Decimal, settings payroll.InsuranceSettings) payroll.Result {
	employment := c.deduct(gross, c.rates.EmploymentInsurance, settings.EmploymentInsurance)
	health := c.deduct(gross, c.rates.HealthInsurance, settings.HealthInsurance)
	accident := c.deduct(gross, c.rates.IndustrialAccident, settings.IndustrialAccident)
	pension := c.deduct(gross, c.rates.NationalPension, settings.NationalPension)
	incomeTax := c.deduct(gross, c.rates.IncomeTax, true)

	withheld := employment.Amount.
		Add(health.Amount).
		Add(accident.Amount).
		Add(pension.Amount).
		Add(incomeTax.Amount)

	return payroll.Result{
		EmploymentInsurance: employment,
		HealthInsurance:     health,
		IndustrialAccident:  accident,
		NationalPension:     pension,
		IncomeTax:           incomeTax,
		NetPay:              gross.Sub(withheld),
	}
}

// CalculateWorkerPay branches once on wage type. Fixed profiles are not
// itemized: every deduction is not-applicable and net pay is the fixed
// amount verbatim, regardless of gross.
func (c *CalculatorImpl) CalculateWorkerPay(profile wage.Profile, gross decimal.Decimal) payroll.Result {
	if profile.WageType == wage.WageTypeFixed {
		return payroll.Result{
			EmploymentInsurance: payroll.NotApplicable(),
			HealthInsurance:     payroll.NotApplicable(),
			IndustrialAccident:  payroll.NotApplicable(),
			NationalPension:     payroll.NotApplicable(),
			IncomeTax:           payroll.NotApplicable(),
			NetPay:              profile.WageAmount,
		}
	}

	return c.CalculatePay(gross, payroll.InsuranceSettings{
		EmploymentInsurance: profile.Insurance.EmploymentInsurance,
		HealthInsurance:     profile.Insurance.HealthInsurance,
		IndustrialAccident:  profile.Insurance.IndustrialAccident,
		NationalPension:     profile.Insurance.NationalPension,
	})
}

func (c *CalculatorImpl) deduct(gross, ratePercent decimal.Decimal, enabled bool) payroll.Deduction {
	if !enabled {
		return payroll.Applicable(decimal.Zero)
	}
	return payroll.Applicable(gross.Mul(ratePercent).Shift(-2).Truncate(0))
}
