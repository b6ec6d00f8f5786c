package http

import (
	"net/http"

	wdash "github.com/geekganization/MOUP-sub000/internal/domain/worker_dashboard"
	"github.com/geekganization/MOUP-sub000/internal/handler/http/response"
)

type WorkerDashboardHandler interface {
	// GetDashboard returns the worker's combined month view
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type workerDashboardHandlerImpl struct {
	service wdash.Service
}

func NewWorkerDashboardHandler(service wdash.Service) WorkerDashboardHandler {
	return &workerDashboardHandlerImpl{service: service}
}

// GetDashboard handles GET /worker-dashboard
// Query params:
//   - year: YYYY (default: current year)
//   - month: 1-12 (default: current month)
func (h *workerDashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
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
