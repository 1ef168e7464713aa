package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"google.golang.org/genai"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// --- mock GenAI client ---

type mockGenAI struct {
	textFn       func(ctx context.Context, prompt string) (string, error)
	structuredFn func(ctx context.Context, prompt string, schema *genai.Schema, out any) error
	textCalls    atomic.Int32
}

func (m *mockGenAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.textCalls.Add(1)
	if m.textFn != nil {
		return m.textFn(ctx, prompt)
	}
	return "", fmt.Errorf("not implemented")
}

func (m *mockGenAI) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	if m.structuredFn != nil {
		return m.structuredFn(ctx, prompt, schema, out)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockGenAI) NewChat(ctx context.Context, systemInstruction string) (interfaces.ChatSession, error) {
	return nil, fmt.Errorf("not implemented")
}

func textByPrompt(prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "overview"):
		return "the overview", nil
	case strings.Contains(prompt, "news stories"):
		return "the news", nil
	case strings.Contains(prompt, "investment outlook"):
		return "the outlook", nil
	}
	return "", fmt.Errorf("unexpected prompt: %s", prompt)
}

func fillFromJSON(out any, raw string) error {
	return json.Unmarshal([]byte(raw), out)
}

func TestAnalyzeStock_MergesSections(t *testing.T) {
	mock := &mockGenAI{
		textFn: func(_ context.Context, prompt string) (string, error) {
			return textByPrompt(prompt)
		},
		structuredFn: func(_ context.Context, prompt string, _ *genai.Schema, out any) error {
			if !strings.Contains(prompt, "INR") {
				t.Errorf("structured prompt missing currency: %s", prompt)
			}
			return fillFromJSON(out, `{
				"marketSentiment": "Bullish",
				"fundamentals": {"peRatio": 28.4},
				"technicals": {"rsi": 62.3},
				"balanceSheet": {"totalAssets": "17.5T INR"},
				"pnl": {"netIncome": "790B INR"},
				"stakeholders": [{"name": "Promoter Group", "shares": "3.4B", "percentage": 50.3}],
				"aiSummary": {"trend": "Bullish", "momentum": "Strong", "volatility": "Medium", "riskLevel": "Medium"}
			}`)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.AnalyzeStock(context.Background(), "India", "RELIANCE.NS", "INR")
	if err != nil {
		t.Fatalf("AnalyzeStock failed: %v", err)
	}

	if result.Overview != "the overview" || result.NewsAnalysis != "the news" || result.InvestmentOutlook != "the outlook" {
		t.Errorf("free-text sections not merged: %+v", result)
	}
	if result.Fundamentals.PERatio != 28.4 {
		t.Errorf("structured block not merged: %+v", result.Fundamentals)
	}
	if result.AISummary.Trend != models.TrendBullish {
		t.Errorf("expected Bullish trend, got %q", result.AISummary.Trend)
	}
	if got := mock.textCalls.Load(); got != 3 {
		t.Errorf("expected 3 free-text calls, got %d", got)
	}
}

func TestAnalyzeStock_AllOrNothing(t *testing.T) {
	wantErr := fmt.Errorf("quota exceeded")
	mock := &mockGenAI{
		textFn: func(_ context.Context, prompt string) (string, error) {
			return textByPrompt(prompt)
		},
		structuredFn: func(_ context.Context, _ string, _ *genai.Schema, _ any) error {
			return wantErr
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.AnalyzeStock(context.Background(), "India", "TCS.NS", "INR")
	if err == nil {
		t.Fatal("expected failure when the structured call fails")
	}
	if result != nil {
		t.Errorf("expected no partial result, got %+v", result)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected first error to propagate, got: %v", err)
	}
}

func TestAnalyzeCrypto_MergesSections(t *testing.T) {
	mock := &mockGenAI{
		textFn: func(_ context.Context, prompt string) (string, error) {
			return textByPrompt(prompt)
		},
		structuredFn: func(_ context.Context, prompt string, _ *genai.Schema, out any) error {
			if !strings.Contains(prompt, "BTC") {
				t.Errorf("structured prompt missing ticker: %s", prompt)
			}
			return fillFromJSON(out, `{
				"marketSentiment": "Neutral",
				"tokenomics": {"marketCap": "1.2T USD", "maxSupply": "21M"},
				"onChainMetrics": {"hashRate": "600 EH/s"},
				"aiSummary": {"trend": "Sideways", "momentum": "Neutral", "volatility": "High", "riskLevel": "High"}
			}`)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.AnalyzeCrypto(context.Background(), "BTC", "USD")
	if err != nil {
		t.Fatalf("AnalyzeCrypto failed: %v", err)
	}

	if result.Tokenomics.MaxSupply != "21M" {
		t.Errorf("structured block not merged: %+v", result.Tokenomics)
	}
	if result.AISummary.Volatility != models.LevelHigh {
		t.Errorf("expected High volatility, got %q", result.AISummary.Volatility)
	}
}

func TestMarketOverview_MergesKeyMetrics(t *testing.T) {
	mock := &mockGenAI{
		textFn: func(_ context.Context, prompt string) (string, error) {
			return textByPrompt(prompt)
		},
		structuredFn: func(_ context.Context, prompt string, _ *genai.Schema, out any) error {
			if !strings.Contains(prompt, "India") {
				t.Errorf("key metrics prompt missing country: %s", prompt)
			}
			return fillFromJSON(out, `{
				"marketSentiment": "Bullish",
				"volatilityIndex": 38.2,
				"riskLevel": "Medium",
				"growthPotential": "High",
				"cagr5y": 13.4
			}`)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.MarketOverview(context.Background(), "India", "Stocks")
	if err != nil {
		t.Fatalf("MarketOverview failed: %v", err)
	}

	if result.KeyMetrics.VolatilityIndex != 38.2 {
		t.Errorf("key metrics not merged: %+v", result.KeyMetrics)
	}
	if result.Overview != "the overview" {
		t.Errorf("free-text sections not merged: %+v", result)
	}
}

func TestMarketOverview_FreeTextFailureFailsWhole(t *testing.T) {
	mock := &mockGenAI{
		textFn: func(_ context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "news stories") {
				return "", fmt.Errorf("model unavailable")
			}
			return textByPrompt(prompt)
		},
		structuredFn: func(_ context.Context, _ string, _ *genai.Schema, out any) error {
			return fillFromJSON(out, `{"marketSentiment": "Bullish", "volatilityIndex": 10, "riskLevel": "Low", "growthPotential": "Low", "cagr5y": 5}`)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	if _, err := svc.MarketOverview(context.Background(), "India", "Cryptocurrency"); err == nil {
		t.Fatal("expected failure when a free-text call fails")
	}
}
