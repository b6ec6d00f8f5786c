package wage

import (
	"github.com/geekganization/MOUP-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterProfileRequest struct {
	WorkplaceID           string          `json:"workplace_id"`
	WageType              string          `json:"wage_type"`
	WageAmount            decimal.Decimal `json:"wage_amount"`
	NightAllowanceEnabled bool            `json:"night_allowance_enabled"`
	PayDay                *int            `json:"pay_day,omitempty"`
	EmploymentInsurance   bool            `json:"employment_insurance"`
	HealthInsurance       bool            `json:"health_insurance"`
	IndustrialAccident    bool            `json:"industrial_accident"`
	NationalPension       bool            `json:"national_pension"`
}

func (r *RegisterProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkplaceID) {
		errs = append(errs, validator.ValidationError{Field: "workplace_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.WageType, WageTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "wage_type", Message: "must be 'hourly' or 'fixed'"})
	}
	if r.WageAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage_amount", Message: "must be non-negative"})
	}
	if r.PayDay != nil && (*r.PayDay < 1 || *r.PayDay > 31) {
		errs = append(errs, validator.ValidationError{Field: "pay_day", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	WorkplaceID           string           `json:"-"`
	WageType              *string          `json:"wage_type,omitempty"`
	WageAmount            *decimal.Decimal `json:"wage_amount,omitempty"`
	NightAllowanceEnabled *bool            `json:"night_allowance_enabled,omitempty"`
	PayDay                *int             `json:"pay_day,omitempty"`
	EmploymentInsurance   *bool            `json:"employment_insurance,omitempty"`
	HealthInsurance       *bool            `json:"health_insurance,omitempty"`
	IndustrialAccident    *bool            `json:"industrial_accident,omitempty"`
	NationalPension       *bool            `json:"national_pension,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WageType != nil && !validator.IsInSlice(*r.WageType, WageTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "wage_type", Message: "must be 'hourly' or 'fixed'"})
	}
	if r.WageAmount != nil && r.WageAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "wage_amount", Message: "must be non-negative"})
	}
	if r.PayDay != nil && (*r.PayDay < 1 || *r.PayDay > 31) {
		errs = append(errs, validator.ValidationError{Field: "pay_day", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID                    string          `json:"id"`
	WorkerID              string          `json:"worker_id"`
	WorkplaceID           string          `json:"workplace_id"`
	WageType              string          `json:"wage_type"`
	WageAmount            decimal.Decimal `json:"wage_amount"`
	NightAllowanceEnabled bool            `json:"night_allowance_enabled"`
	PayDay                *int            `json:"pay_day,omitempty"`
	EmploymentInsurance   bool            `json:"employment_insurance"`
	HealthInsurance       bool            `json:"health_insurance"`
	IndustrialAccident    bool            `json:"industrial_accident"`
	NationalPension       bool            `json:"national_pension"`
}
