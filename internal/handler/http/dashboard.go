package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/dashboard"
	"github.com/geekganization/MOUP-sub000/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardHandler interface {
	// GetDashboard returns the owner's combined month view
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	service dashboard.Service
}

func NewDashboardHandler(service dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{service: service}
}

// GetDashboard handles GET /owner-dashboard
// Query params:
//   - year: YYYY (default: current year)
//   - month: 1-12 (default: current month)
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)

	year, month, ok := yearMonthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be valid integers", nil)
		return
	}

	result, err := h.service.GetDashboard(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	userID, _ := claims["user_id"].(string)
	return userID
}

// yearMonthParams reads the year/month query params, defaulting to the
// current calendar month.
func yearMonthParams(r *http.Request) (year, month int, ok bool) {
	now := time.Now()
	year, month = now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = parsed
	}
	return year, month, true
}
