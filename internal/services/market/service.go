// Package market produces price series and quote snapshots
package market

import (
	"context"
	"sort"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// Compile-time interface check
var _ interfaces.MarketService = (*Service)(nil)

// Service implements MarketService
type Service struct {
	genai  interfaces.GenAIClient
	logger *common.Logger
}

// NewService creates a new market data service
func NewService(genaiClient interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		genai:  genaiClient,
		logger: logger,
	}
}

// GetHistoricalSeries returns the daily OHLC series for the last year. The
// model is instructed to sort ascending; the series is re-sorted anyway
// since ISO dates order lexically.
func (s *Service) GetHistoricalSeries(ctx context.Context, ticker string) ([]models.HistoricalDataPoint, error) {
	s.logger.Debug().Str("ticker", ticker).Msg("Fetching historical series")

	var points []models.HistoricalDataPoint
	err := s.genai.GenerateStructured(ctx, gemini.HistoricalDataPrompt(ticker), gemini.HistoricalDataSchema(), &points)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

// GetRealTimeQuotes returns current quote snapshots for a ticker batch.
// An empty batch short-circuits without a model call.
func (s *Service) GetRealTimeQuotes(ctx context.Context, tickers []string) ([]models.AssetRealTimeInfo, error) {
	if len(tickers) == 0 {
		return []models.AssetRealTimeInfo{}, nil
	}

	s.logger.Debug().Int("tickers", len(tickers)).Msg("Fetching real-time quotes")

	var quotes []models.AssetRealTimeInfo
	err := s.genai.GenerateStructured(ctx, gemini.RealTimeQuotePrompt(tickers), gemini.RealTimeQuoteSchema(), &quotes)
	if err != nil {
		return nil, err
	}
	return quotes, nil
}
