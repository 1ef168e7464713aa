// Package interfaces defines service contracts for MarketLens
package interfaces

import (
	"context"

	"github.com/marketlens/marketlens/internal/models"
)

// AnalysisService produces AI-generated analysis reports.
type AnalysisService interface {
	// AnalyzeStock generates the full stock report for a ticker
	AnalyzeStock(ctx context.Context, countryName, ticker, currencyCode string) (*models.StockAnalysisResult, error)

	// AnalyzeCrypto generates the full crypto report for a ticker
	AnalyzeCrypto(ctx context.Context, ticker, currencyCode string) (*models.CryptoAnalysisResult, error)

	// MarketOverview generates the whole-market report for an asset class in a country
	MarketOverview(ctx context.Context, countryName, assetName string) (*models.MarketOverviewResult, error)
}

// MarketService produces price data series and snapshots.
type MarketService interface {
	// GetHistoricalSeries returns the daily OHLC series for the last year,
	// ascending by date
	GetHistoricalSeries(ctx context.Context, ticker string) ([]models.HistoricalDataPoint, error)

	// GetRealTimeQuotes returns current quote snapshots for a ticker batch
	GetRealTimeQuotes(ctx context.Context, tickers []string) ([]models.AssetRealTimeInfo, error)

	// RenderHistoryChart renders a historical series as a PNG
	RenderHistoryChart(ticker string, points []models.HistoricalDataPoint) ([]byte, error)
}

// ScreenerService produces categorized asset rankings.
type ScreenerService interface {
	// ScreenStocks generates the stock screener report for a country's market
	ScreenStocks(ctx context.Context, countryName string) (*models.StockScreenerResult, error)

	// ScreenCrypto generates the cryptocurrency screener report
	ScreenCrypto(ctx context.Context) (*models.CryptoScreenerResult, error)
}

// ChatService manages conversational sessions scoped to one asset each.
type ChatService interface {
	// CreateSession opens a session and returns its ID
	CreateSession(ctx context.Context, userID, assetName string, assetType models.AssetClass) (string, error)

	// SendTurn sends one user turn and streams reply fragments through
	// onFragment; it returns the full reply text once the stream completes.
	// A mid-stream failure discards partial text and resolves the turn to a
	// fixed apology message, leaving the session usable.
	SendTurn(ctx context.Context, sessionID, message string, onFragment func(fragment string) error) (string, error)

	// GetTranscript returns the persisted message sequence for a session
	GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error)
}

// DashboardService joins the per-asset requests into one view-model.
type DashboardService interface {
	// Select runs the four-way concurrent load for an asset. All four
	// requests must succeed; the first observed error wins and all other
	// results are discarded. A call superseded by a newer selection before
	// it completes fails with ErrSuperseded and leaves the newer
	// selection's view-model in place.
	Select(ctx context.Context, item models.WatchlistItem, class models.AssetClass) (*models.DashboardView, error)

	// Current returns the most recently joined view-model, or nil
	Current() *models.DashboardView
}

// WatchlistService manages per-user watchlists.
type WatchlistService interface {
	// GetWatchlist returns the user's watchlist for an asset class,
	// seeding it from the defaults on first access
	GetWatchlist(ctx context.Context, userID string, class models.AssetClass) (*models.UserWatchlist, error)

	// AddItem upserts an item keyed on ticker
	AddItem(ctx context.Context, userID string, class models.AssetClass, item models.WatchlistItem) (*models.UserWatchlist, error)

	// RemoveItem removes an item by ticker
	RemoveItem(ctx context.Context, userID string, class models.AssetClass, ticker string) (*models.UserWatchlist, error)

	// Resolve maps free-text search input to a watchlist item. Unknown
	// tickers are echoed back as both ticker and name with the asset
	// class's default currency.
	Resolve(ctx context.Context, userID string, class models.AssetClass, query string) (models.WatchlistItem, error)
}
