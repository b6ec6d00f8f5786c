package http

import (
	"encoding/json"
	"net/http"

	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WageHandler interface {
	// Register creates the worker's wage profile at a workplace
	Register(w http.ResponseWriter, r *http.Request)
	// Update edits the worker's wage profile at a workplace
	Update(w http.ResponseWriter, r *http.Request)
	// Get returns the worker's wage profile at a workplace
	Get(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	service wage.Service
}

func NewWageHandler(service wage.Service) WageHandler {
	return &wageHandlerImpl{service: service}
}

// Register handles POST /wage-profiles
func (h *wageHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req wage.RegisterProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Register(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wage profile registered", result)
}

// Update handles PUT /wage-profiles/{workplaceID}
func (h *wageHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req wage.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.WorkplaceID = chi.URLParam(r, "workplaceID")

	result, err := h.service.Update(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /wage-profiles/{workplaceID}
func (h *wageHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	workplaceID := chi.URLParam(r, "workplaceID")

	result, err := h.service.Get(r.Context(), userID, workplaceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
