// Package screener produces categorized asset rankings
package screener

import (
	"context"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// Compile-time interface check
var _ interfaces.ScreenerService = (*Service)(nil)

// Service implements ScreenerService. Screener reports are generated fresh
// on every call; rankings describe "today's market" and are not cached.
type Service struct {
	genai  interfaces.GenAIClient
	logger *common.Logger
}

// NewService creates a new screener service
func NewService(genaiClient interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		genai:  genaiClient,
		logger: logger,
	}
}

// ScreenStocks generates the stock screener report for a country's market
func (s *Service) ScreenStocks(ctx context.Context, countryName string) (*models.StockScreenerResult, error) {
	s.logger.Info().Str("country", countryName).Msg("Generating stock screener")

	var result models.StockScreenerResult
	err := s.genai.GenerateStructured(ctx, gemini.StockScreenerPrompt(countryName), gemini.StockScreenerSchema(), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ScreenCrypto generates the cryptocurrency screener report
func (s *Service) ScreenCrypto(ctx context.Context) (*models.CryptoScreenerResult, error) {
	s.logger.Info().Msg("Generating crypto screener")

	var result models.CryptoScreenerResult
	err := s.genai.GenerateStructured(ctx, gemini.CryptoScreenerPrompt(), gemini.CryptoScreenerSchema(), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
