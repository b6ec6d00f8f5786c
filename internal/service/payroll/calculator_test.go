package payroll

import (
	"testing"

	domain "github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRates() domain.Rates {
	return domain.Rates{
		EmploymentInsurance: decimal.RequireFromString("0.9"),
		HealthInsurance:     decimal.RequireFromString("3.545"),
		IndustrialAccident:  decimal.RequireFromString("0.7"),
		NationalPension:     decimal.RequireFromString("4.5"),
		IncomeTax:           decimal.RequireFromString("3.3"),
	}
}

func TestCalculatePay_AllEnabled(t *testing.T) {
	calc := NewCalculator(testRates())

	gross := decimal.NewFromInt(1_000_000)
	got := calc.CalculatePay(gross, domain.InsuranceSettings{
		EmploymentInsurance: true,
		HealthInsurance:     true,
		IndustrialAccident:  true,
		NationalPension:     true,
	})

	assert.True(t, got.EmploymentInsurance.Applicable)
	assert.Equal(t, "9000", got.EmploymentInsurance.Amount.String())
	assert.Equal(t, "35450", got.HealthInsurance.Amount.String())
	assert.Equal(t, "7000", got.IndustrialAccident.Amount.String())
	assert.Equal(t, "45000", got.NationalPension.Amount.String())
	assert.Equal(t, "33000", got.IncomeTax.Amount.String())
	// 1_000_000 - (9000 + 35450 + 7000 + 45000 + 33000)
	assert.Equal(t, "870550", got.NetPay.String())
}

func TestCalculatePay_DisabledCategoriesContributeZero(t *testing.T) {
	calc := NewCalculator(testRates())

	gross := decimal.NewFromInt(1_000_000)
	got := calc.CalculatePay(gross, domain.InsuranceSettings{
		NationalPension: true,
	})

	// Disabled categories are applicable zeros, not sentinels.
	assert.True(t, got.EmploymentInsurance.Applicable)
	assert.True(t, got.EmploymentInsurance.Amount.IsZero())
	assert.True(t, got.HealthInsurance.Amount.IsZero())
	assert.True(t, got.IndustrialAccident.Amount.IsZero())
	assert.Equal(t, "45000", got.NationalPension.Amount.String())
	// Income tax is always withheld.
	assert.Equal(t, "33000", got.IncomeTax.Amount.String())
	assert.Equal(t, "922000", got.NetPay.String())
}

func TestCalculatePay_TruncatesToWholeUnits(t *testing.T) {
	calc := NewCalculator(testRates())

	// 12345 * 3.545% = 437.63025 -> 437
	got := calc.CalculatePay(decimal.NewFromInt(12345), domain.InsuranceSettings{HealthInsurance: true})
	assert.Equal(t, "437", got.HealthInsurance.Amount.String())
}

func TestCalculatePay_ZeroGross(t *testing.T) {
	calc := NewCalculator(testRates())

	got := calc.CalculatePay(decimal.Zero, domain.InsuranceSettings{
		EmploymentInsurance: true,
		HealthInsurance:     true,
		IndustrialAccident:  true,
		NationalPension:     true,
	})
	assert.True(t, got.NetPay.IsZero())
}

func TestCalculateWorkerPay_FixedBypassesItemization(t *testing.T) {
	calc := NewCalculator(testRates())

	profile := wage.Profile{
		WageType:   wage.WageTypeFixed,
		WageAmount: decimal.NewFromInt(2_500_000),
		Insurance: wage.InsuranceEnrollment{
			EmploymentInsurance: true,
			HealthInsurance:     true,
			IndustrialAccident:  true,
			NationalPension:     true,
		},
	}

	// gross is ignored for fixed profiles
	got := calc.CalculateWorkerPay(profile, decimal.NewFromInt(999))

	assert.False(t, got.EmploymentInsurance.Applicable)
	assert.False(t, got.HealthInsurance.Applicable)
	assert.False(t, got.IndustrialAccident.Applicable)
	assert.False(t, got.NationalPension.Applicable)
	assert.False(t, got.IncomeTax.Applicable)
	assert.Equal(t, "2500000", got.NetPay.String())
}

func TestCalculateWorkerPay_HourlyItemizes(t *testing.T) {
	calc := NewCalculator(testRates())

	profile := wage.Profile{
		WageType:   wage.WageTypeHourly,
		WageAmount: decimal.NewFromInt(10000),
		Insurance:  wage.InsuranceEnrollment{NationalPension: true},
	}

	got := calc.CalculateWorkerPay(profile, decimal.NewFromInt(100000))
	assert.True(t, got.NationalPension.Applicable)
	assert.Equal(t, "4500", got.NationalPension.Amount.String())
	assert.Equal(t, "3300", got.IncomeTax.Amount.String())
	assert.Equal(t, "92200", got.NetPay.String())
}

func TestDeduction_MarshalJSON(t *testing.T) {
	na, err := domain.NotApplicable().MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "-1", string(na))

	app, err := domain.Applicable(decimal.NewFromInt(4500)).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "4500", string(app))
}

func TestResult_Add(t *testing.T) {
	calc := NewCalculator(testRates())
	a := calc.CalculatePay(decimal.NewFromInt(100000), domain.InsuranceSettings{NationalPension: true})
	b := calc.CalculatePay(decimal.NewFromInt(200000), domain.InsuranceSettings{NationalPension: true})

	sum := a.Add(b)
	assert.Equal(t, "13500", sum.NationalPension.Amount.String())
	assert.Equal(t, "9900", sum.IncomeTax.Amount.String())
	assert.Equal(t, a.NetPay.Add(b.NetPay).String(), sum.NetPay.String())

	// not-applicable stays not-applicable only when both sides are
	na := domain.Result{
		EmploymentInsurance: domain.NotApplicable(),
		HealthInsurance:     domain.NotApplicable(),
		IndustrialAccident:  domain.NotApplicable(),
		NationalPension:     domain.NotApplicable(),
		IncomeTax:           domain.NotApplicable(),
		NetPay:              decimal.NewFromInt(1000),
	}
	both := na.Add(na)
	assert.False(t, both.NationalPension.Applicable)
	assert.Equal(t, "2000", both.NetPay.String())

	mixed := na.Add(a)
	assert.True(t, mixed.NationalPension.Applicable)
}
