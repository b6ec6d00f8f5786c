package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"workplace not found", workplace.ErrWorkplaceNotFound, http.StatusNotFound},
		{"not workplace owner", workplace.ErrNotWorkplaceOwner, http.StatusForbidden},
		{"already member", workplace.ErrAlreadyMember, http.StatusConflict},
		{"not member", workplace.ErrNotMember, http.StatusForbidden},
		{"profile not found", wage.ErrProfileNotFound, http.StatusNotFound},
		{"profile exists", wage.ErrProfileAlreadyExists, http.StatusConflict},
		{"shift not found", shift.ErrShiftNotFound, http.StatusNotFound},
		{"not shift owner", shift.ErrNotShiftOwner, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "start_time", Message: "must be HH:mm"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "must be HH:mm", body.Error.Details["start_time"])
}

func TestHandleError_UnknownErrorIsNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused"))

	assert.NotContains(t, rec.Body.String(), "connection refused")
}
