package server

import (
	"net/http"

	"github.com/marketlens/marketlens/internal/models"
)

// dashboardRequest is the body of POST /api/dashboard.
type dashboardRequest struct {
	Class models.AssetClass    `json:"class"`
	Item  models.WatchlistItem `json:"item"`
}

// handleDashboard handles the dashboard selection endpoints.
//
//	POST /api/dashboard  selects an asset and joins the full view-model
//	GET  /api/dashboard  returns the current view-model
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		view := s.app.DashboardService.Current()
		if view == nil {
			WriteError(w, http.StatusNotFound, "No asset selected")
			return
		}
		WriteJSON(w, http.StatusOK, view)

	case http.MethodPost:
		var req dashboardRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		if req.Class == "" {
			req.Class = models.AssetClassStocks
		}
		if !req.Class.Valid() {
			WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(req.Class))
			return
		}
		if req.Item.Ticker == "" {
			WriteError(w, http.StatusBadRequest, "Ticker is required")
			return
		}
		if req.Item.Name == "" {
			req.Item.Name = req.Item.Ticker
		}

		view, err := s.app.DashboardService.Select(r.Context(), req.Item, req.Class)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, view)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}
