// Package analysis produces AI-generated analysis reports
package analysis

import (
	"context"
	"sync"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// Compile-time interface check
var _ interfaces.AnalysisService = (*Service)(nil)

// Service implements AnalysisService. Each report is assembled from three
// free-text calls and one structured call, issued concurrently. The report
// is all-or-nothing: the first failure wins and the other results are
// discarded.
type Service struct {
	genai  interfaces.GenAIClient
	logger *common.Logger
}

// NewService creates a new analysis service
func NewService(genaiClient interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		genai:  genaiClient,
		logger: logger,
	}
}

// stockStructured is the structured block of a stock report. The free-text
// sections come from separate calls and are merged in afterwards.
type stockStructured struct {
	MarketSentiment string                   `json:"marketSentiment"`
	Fundamentals    models.StockFundamentals `json:"fundamentals"`
	Technicals      models.StockTechnicals   `json:"technicals"`
	BalanceSheet    models.StockBalanceSheet `json:"balanceSheet"`
	PNL             models.StockPNL          `json:"pnl"`
	Stakeholders    []models.Stakeholder     `json:"stakeholders"`
	AISummary       models.AISummary         `json:"aiSummary"`
}

// cryptoStructured is the structured block of a crypto report.
type cryptoStructured struct {
	MarketSentiment string                `json:"marketSentiment"`
	Tokenomics      models.Tokenomics     `json:"tokenomics"`
	OnChainMetrics  models.OnChainMetrics `json:"onChainMetrics"`
	AISummary       models.AISummary      `json:"aiSummary"`
}

// AnalyzeStock generates the full stock report for a ticker
func (s *Service) AnalyzeStock(ctx context.Context, countryName, ticker, currencyCode string) (*models.StockAnalysisResult, error) {
	s.logger.Info().Str("ticker", ticker).Msg("Generating stock analysis")

	var (
		overview, news, outlook string
		structured              stockStructured
	)

	err := s.join(
		func() error {
			var err error
			overview, err = s.genai.GenerateText(ctx, gemini.StockOverviewPrompt(ticker, countryName))
			return err
		},
		func() error {
			var err error
			news, err = s.genai.GenerateText(ctx, gemini.StockNewsPrompt(ticker))
			return err
		},
		func() error {
			var err error
			outlook, err = s.genai.GenerateText(ctx, gemini.StockOutlookPrompt(ticker))
			return err
		},
		func() error {
			prompt := gemini.StockStructuredPrompt(ticker, countryName, currencyCode)
			return s.genai.GenerateStructured(ctx, prompt, gemini.StockAnalysisSchema(), &structured)
		},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Stock analysis failed")
		return nil, err
	}

	return &models.StockAnalysisResult{
		Overview:          overview,
		NewsAnalysis:      news,
		InvestmentOutlook: outlook,
		MarketSentiment:   structured.MarketSentiment,
		Fundamentals:      structured.Fundamentals,
		Technicals:        structured.Technicals,
		BalanceSheet:      structured.BalanceSheet,
		PNL:               structured.PNL,
		Stakeholders:      structured.Stakeholders,
		AISummary:         structured.AISummary,
	}, nil
}

// AnalyzeCrypto generates the full crypto report for a ticker
func (s *Service) AnalyzeCrypto(ctx context.Context, ticker, currencyCode string) (*models.CryptoAnalysisResult, error) {
	s.logger.Info().Str("ticker", ticker).Msg("Generating crypto analysis")

	var (
		overview, news, outlook string
		structured              cryptoStructured
	)

	err := s.join(
		func() error {
			var err error
			overview, err = s.genai.GenerateText(ctx, gemini.CryptoOverviewPrompt(ticker))
			return err
		},
		func() error {
			var err error
			news, err = s.genai.GenerateText(ctx, gemini.CryptoNewsPrompt(ticker))
			return err
		},
		func() error {
			var err error
			outlook, err = s.genai.GenerateText(ctx, gemini.CryptoOutlookPrompt(ticker))
			return err
		},
		func() error {
			prompt := gemini.CryptoStructuredPrompt(ticker, currencyCode)
			return s.genai.GenerateStructured(ctx, prompt, gemini.CryptoAnalysisSchema(), &structured)
		},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Crypto analysis failed")
		return nil, err
	}

	return &models.CryptoAnalysisResult{
		Overview:          overview,
		NewsAnalysis:      news,
		InvestmentOutlook: outlook,
		MarketSentiment:   structured.MarketSentiment,
		Tokenomics:        structured.Tokenomics,
		OnChainMetrics:    structured.OnChainMetrics,
		AISummary:         structured.AISummary,
	}, nil
}

// MarketOverview generates the whole-market report for an asset class in a country
func (s *Service) MarketOverview(ctx context.Context, countryName, assetName string) (*models.MarketOverviewResult, error) {
	s.logger.Info().Str("asset", assetName).Str("country", countryName).Msg("Generating market overview")

	var (
		overview, news, outlook string
		metrics                 models.KeyMetrics
	)

	err := s.join(
		func() error {
			var err error
			overview, err = s.genai.GenerateText(ctx, gemini.MarketOverviewPrompt(assetName, countryName))
			return err
		},
		func() error {
			var err error
			news, err = s.genai.GenerateText(ctx, gemini.MarketNewsPrompt(assetName, countryName))
			return err
		},
		func() error {
			var err error
			outlook, err = s.genai.GenerateText(ctx, gemini.MarketOutlookPrompt(assetName, countryName))
			return err
		},
		func() error {
			prompt := gemini.KeyMetricsPrompt(assetName, countryName)
			return s.genai.GenerateStructured(ctx, prompt, gemini.KeyMetricsSchema(), &metrics)
		},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("asset", assetName).Msg("Market overview failed")
		return nil, err
	}

	return &models.MarketOverviewResult{
		Overview:          overview,
		NewsAnalysis:      news,
		InvestmentOutlook: outlook,
		KeyMetrics:        metrics,
	}, nil
}

// join runs the tasks concurrently and returns the first error observed.
// Each task writes only its own result variable, so no result is read
// unless every task succeeded.
func (s *Service) join(tasks ...func() error) error {
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
