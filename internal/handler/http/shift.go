package http

import (
	"encoding/json"
	"net/http"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	// Create records a shift on the worker's calendar
	Create(w http.ResponseWriter, r *http.Request)
	// Update edits one of the worker's shifts
	Update(w http.ResponseWriter, r *http.Request)
	// Delete removes one of the worker's shifts
	Delete(w http.ResponseWriter, r *http.Request)
	// ListMonth lists the worker's shifts for a calendar month
	ListMonth(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	service shift.Service
}

func NewShiftHandler(service shift.Service) ShiftHandler {
	return &shiftHandlerImpl{service: service}
}

// Create handles POST /shifts
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift recorded", result)
}

// Update handles PUT /shifts/{shiftID}
func (h *shiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "shiftID")

	result, err := h.service.Update(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete handles DELETE /shifts/{shiftID}
func (h *shiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.service.Delete(r.Context(), userID, shiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// ListMonth handles GET /shifts
// Query params:
//   - year: YYYY (default: current year)
//   - month: 1-12 (default: current month)
func (h *shiftHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	year, month, ok := yearMonthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be valid integers", nil)
		return
	}

	result, err := h.service.ListMonth(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
