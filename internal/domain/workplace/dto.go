package workplace

import "github.com/geekganization/MOUP-sub000/internal/pkg/validator"

type CreateWorkplaceRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

func (r *CreateWorkplaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at most 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JoinWorkplaceRequest struct {
	WorkplaceID string `json:"workplace_id"`
}

func (r *JoinWorkplaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkplaceID) {
		errs = append(errs, validator.ValidationError{Field: "workplace_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkplaceResponse struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"owner_id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

type MemberResponse struct {
	WorkerID   string `json:"worker_id"`
	Nickname   string `json:"nickname"`
	JoinedAt   string `json:"joined_at"`
	HasProfile bool   `json:"has_profile"`
}
