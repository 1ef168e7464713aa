package server

import (
	"net/http"
	"strings"

	"github.com/marketlens/marketlens/internal/models"
)

// handleScreener handles GET /api/screener?class=.
func (s *Server) handleScreener(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	class := classParam(r)
	if !class.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(class))
		return
	}

	var result models.ScreenerResult
	if class == models.AssetClassCrypto {
		crypto, err := s.app.ScreenerService.ScreenCrypto(r.Context())
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		result.Crypto = crypto
	} else {
		stocks, err := s.app.ScreenerService.ScreenStocks(r.Context(), s.app.Config.Country)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		result.Stock = stocks
	}
	WriteJSON(w, http.StatusOK, result)
}

// handleOverview handles GET /api/overview?country=&asset=.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	country := r.URL.Query().Get("country")
	if country == "" {
		country = s.app.Config.Country
	}
	asset := r.URL.Query().Get("asset")
	if asset == "" {
		asset = "Stocks"
	}

	result, err := s.app.AnalysisService.MarketOverview(r.Context(), country, asset)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// routeAssets dispatches /api/assets/{ticker}/... subroutes.
func (s *Server) routeAssets(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/assets/")
	switch {
	case strings.HasSuffix(rest, "/history"):
		s.handleAssetHistory(w, r)
	case strings.HasSuffix(rest, "/realtime"):
		s.handleAssetRealtime(w, r)
	case strings.HasSuffix(rest, "/chart.png"):
		s.handleAssetChart(w, r)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handleAssetHistory handles GET /api/assets/{ticker}/history.
func (s *Server) handleAssetHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/assets/", "/history")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	points, err := s.app.MarketService.GetHistoricalSeries(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, points)
}

// handleAssetRealtime handles GET /api/assets/{ticker}/realtime. The ticker
// segment may be a comma-separated batch.
func (s *Server) handleAssetRealtime(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	segment := PathParam(r, "/api/assets/", "/realtime")
	if segment == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	var tickers []string
	for _, t := range strings.Split(segment, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}

	quotes, err := s.app.MarketService.GetRealTimeQuotes(r.Context(), tickers)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, quotes)
}

// handleAssetChart handles GET /api/assets/{ticker}/chart.png.
func (s *Server) handleAssetChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/assets/", "/chart.png")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}

	points, err := s.app.MarketService.GetHistoricalSeries(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	png, err := s.app.MarketService.RenderHistoryChart(ticker, points)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
