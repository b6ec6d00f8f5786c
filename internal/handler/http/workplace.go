package http

import (
	"encoding/json"
	"net/http"

	"github.com/geekganization/MOUP-sub000/internal/domain/user"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type WorkplaceHandler interface {
	// Create registers a new workplace for the owner
	Create(w http.ResponseWriter, r *http.Request)
	// Join adds the worker to a workplace
	Join(w http.ResponseWriter, r *http.Request)
	// ListMine lists the caller's workplaces, owned or joined by role
	ListMine(w http.ResponseWriter, r *http.Request)
	// ListMembers lists a workplace's workers for its owner
	ListMembers(w http.ResponseWriter, r *http.Request)
}

type workplaceHandlerImpl struct {
	service workplace.Service
}

func NewWorkplaceHandler(service workplace.Service) WorkplaceHandler {
	return &workplaceHandlerImpl{service: service}
}

// Create handles POST /workplaces
func (h *workplaceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req workplace.CreateWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workplace created", result)
}

// Join handles POST /workplaces/join
func (h *workplaceHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	var req workplace.JoinWorkplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Join(r.Context(), userID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Joined workplace", nil)
}

// ListMine handles GET /workplaces/my
func (h *workplaceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	_, claims, _ := jwtauth.FromContext(r.Context())
	role, _ := claims["role"].(string)

	result, err := h.service.ListMine(r.Context(), userID, role == string(user.RoleOwner))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMembers handles GET /workplaces/{workplaceID}/members
func (h *workplaceHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	workplaceID := chi.URLParam(r, "workplaceID")

	result, err := h.service.ListMembers(r.Context(), userID, workplaceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
