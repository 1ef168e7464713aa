package server

import (
	"net/http"
	"strings"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/models"
)

// classParam reads the asset class query parameter, defaulting to stocks.
func classParam(r *http.Request) models.AssetClass {
	class := models.AssetClass(r.URL.Query().Get("class"))
	if class == "" {
		return models.AssetClassStocks
	}
	return class
}

// handleWatchlist handles GET /api/watchlist?class=.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	class := classParam(r)
	if !class.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(class))
		return
	}

	userID := common.ResolveUserID(r.Context())
	wl, err := s.app.WatchlistService.GetWatchlist(r.Context(), userID, class)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, wl)
}

// addItemRequest is the body of POST /api/watchlist/items.
type addItemRequest struct {
	Class models.AssetClass    `json:"class"`
	Item  models.WatchlistItem `json:"item"`
}

// handleWatchlistItems handles POST /api/watchlist/items.
func (s *Server) handleWatchlistItems(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req addItemRequest
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

	userID := common.ResolveUserID(r.Context())
	wl, err := s.app.WatchlistService.AddItem(r.Context(), userID, req.Class, req.Item)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, wl)
}

// handleWatchlistItem handles DELETE /api/watchlist/items/{ticker}?class=.
func (s *Server) handleWatchlistItem(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	ticker := PathParam(r, "/api/watchlist/items/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	class := classParam(r)
	if !class.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(class))
		return
	}

	userID := common.ResolveUserID(r.Context())
	wl, err := s.app.WatchlistService.RemoveItem(r.Context(), userID, class, ticker)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, wl)
}

// handleWatchlistResolve handles GET /api/watchlist/resolve?q=&class=.
func (s *Server) handleWatchlistResolve(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		WriteError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	class := classParam(r)
	if !class.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(class))
		return
	}

	userID := common.ResolveUserID(r.Context())
	item, err := s.app.WatchlistService.Resolve(r.Context(), userID, class, query)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}
