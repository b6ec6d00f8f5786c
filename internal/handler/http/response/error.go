package response

import (
	"errors"
	"net/http"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/user"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/geekganization/MOUP-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / role errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner role required")
	case errors.Is(err, user.ErrWorkerAccessRequired):
		Forbidden(w, "Worker role required")

	// Workplace domain errors
	case errors.Is(err, workplace.ErrWorkplaceNotFound):
		NotFound(w, "Workplace not found")
	case errors.Is(err, workplace.ErrNotWorkplaceOwner):
		Forbidden(w, "Not the owner of this workplace")
	case errors.Is(err, workplace.ErrAlreadyMember):
		Conflict(w, "Already a member of this workplace")
	case errors.Is(err, workplace.ErrNotMember):
		Forbidden(w, "Not a member of this workplace")

	// Wage profile domain errors
	case errors.Is(err, wage.ErrProfileNotFound):
		NotFound(w, "Wage profile not found")
	case errors.Is(err, wage.ErrProfileAlreadyExists):
		Conflict(w, "Wage profile already registered for this workplace")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, "Not the owner of this shift")
	case errors.Is(err, timeutil.ErrInvalidClock):
		BadRequest(w, "Clock time must be HH:mm", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
