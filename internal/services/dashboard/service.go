// Package dashboard joins per-asset requests into one view-model
package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// ErrSuperseded is returned by Select when a newer selection arrived before
// this one finished. The newer selection's view-model wins.
var ErrSuperseded = errors.New("selection superseded by a newer request")

// Compile-time interface check
var _ interfaces.DashboardService = (*Service)(nil)

// Service implements DashboardService. Each Select carries a generation
// token; only the latest generation may commit its view-model, so a slow
// response for a previous selection can never overwrite a newer one.
type Service struct {
	analysis interfaces.AnalysisService
	market   interfaces.MarketService
	chat     interfaces.ChatService
	country  string
	currency string
	logger   *common.Logger

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
	view       *models.DashboardView
}

// NewService creates a new dashboard service. country and currency describe
// the home stock market and back any watchlist item that omits its own.
func NewService(
	analysisService interfaces.AnalysisService,
	marketService interfaces.MarketService,
	chatService interfaces.ChatService,
	country, currency string,
	logger *common.Logger,
) *Service {
	return &Service{
		analysis: analysisService,
		market:   marketService,
		chat:     chatService,
		country:  country,
		currency: currency,
		logger:   logger,
	}
}

// Select runs the four-way concurrent load for an asset: analysis, one year
// of history, a real-time quote, and a fresh chat session. All four must
// succeed; the first observed error wins and the other results are
// discarded whole.
func (s *Service) Select(ctx context.Context, item models.WatchlistItem, class models.AssetClass) (*models.DashboardView, error) {
	if !class.Valid() {
		return nil, errors.New("unknown asset class")
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	s.cancelPrev = cancel
	s.mu.Unlock()

	s.logger.Info().Str("ticker", item.Ticker).Str("class", string(class)).Msg("Dashboard selection started")

	userID := common.ResolveUserID(ctx)
	countryName := s.countryName(item)
	currency := item.CurrencyCode
	if currency == "" {
		currency = s.currency
	}

	var (
		analysis  models.AnalysisResult
		history   []models.HistoricalDataPoint
		quotes    []models.AssetRealTimeInfo
		sessionID string
	)

	err := join(
		func() error {
			if class == models.AssetClassCrypto {
				result, err := s.analysis.AnalyzeCrypto(ctx, item.Ticker, currency)
				if err != nil {
					return err
				}
				analysis.Crypto = result
				return nil
			}
			result, err := s.analysis.AnalyzeStock(ctx, countryName, item.Ticker, currency)
			if err != nil {
				return err
			}
			analysis.Stock = result
			return nil
		},
		func() error {
			var err error
			history, err = s.market.GetHistoricalSeries(ctx, item.Ticker)
			return err
		},
		func() error {
			var err error
			quotes, err = s.market.GetRealTimeQuotes(ctx, []string{item.Ticker})
			return err
		},
		func() error {
			var err error
			sessionID, err = s.chat.CreateSession(ctx, userID, item.Name, class)
			return err
		},
	)

	view := &models.DashboardView{
		Asset:         item,
		Class:         class,
		Analysis:      analysis,
		History:       history,
		ChatSessionID: sessionID,
	}
	if q, ok := models.QuotesByTicker(quotes)[item.Ticker]; ok {
		view.RealTime = &q
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug().Str("ticker", item.Ticker).Msg("Dashboard selection superseded")
		return nil, ErrSuperseded
	}
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", item.Ticker).Msg("Dashboard selection failed")
		return nil, err
	}

	s.view = view
	return view, nil
}

// Current returns the most recently joined view-model, or nil
func (s *Service) Current() *models.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Service) countryName(item models.WatchlistItem) string {
	if name, ok := models.CountryNames[item.CountryCode]; ok {
		return name
	}
	return s.country
}

// join runs the tasks concurrently and returns the first error observed.
func join(tasks ...func() error) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return firstErr
}
