package shift

import (
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/geekganization/MOUP-sub000/internal/pkg/validator"
)

type CreateShiftRequest struct {
	WorkplaceID  string  `json:"workplace_id"`
	EventDate    string  `json:"event_date"` // YYYY-MM-DD
	StartTime    string  `json:"start_time"` // HH:mm
	EndTime      string  `json:"end_time"`   // HH:mm
	BreakMinutes int     `json:"break_minutes"`
	Memo         *string `json:"memo,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkplaceID) {
		errs = append(errs, validator.ValidationError{Field: "workplace_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EventDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "event_date", Message: "must be YYYY-MM-DD"})
	}
	if _, err := timeutil.ParseClock(r.StartTime); err != nil {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:mm"})
	}
	if _, err := timeutil.ParseClock(r.EndTime); err != nil {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:mm"})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID           string  `json:"-"`
	EventDate    *string `json:"event_date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Memo         *string `json:"memo,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EventDate != nil {
		if _, ok := validator.IsValidDate(*r.EventDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "event_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.StartTime != nil {
		if _, err := timeutil.ParseClock(*r.StartTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:mm"})
		}
	}
	if r.EndTime != nil {
		if _, err := timeutil.ParseClock(*r.EndTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:mm"})
		}
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	WorkerID     string  `json:"worker_id"`
	WorkplaceID  string  `json:"workplace_id"`
	EventDate    string  `json:"event_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	Memo         *string `json:"memo,omitempty"`

	// Elapsed time net of the break, for calendar display.
	WorkedTime    string `json:"worked_time"`
	WorkedMinutes int    `json:"worked_minutes"`
}
