package screener

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
)

type mockGenAI struct {
	structuredFn func(ctx context.Context, prompt string, schema *genai.Schema, out any) error
}

func (m *mockGenAI) GenerateText(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("not implemented")
}

func (m *mockGenAI) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	return m.structuredFn(ctx, prompt, schema, out)
}

func (m *mockGenAI) NewChat(_ context.Context, _ string) (interfaces.ChatSession, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestScreenStocks(t *testing.T) {
	mock := &mockGenAI{
		structuredFn: func(_ context.Context, prompt string, _ *genai.Schema, out any) error {
			if !strings.Contains(prompt, "India") {
				t.Errorf("prompt missing country: %s", prompt)
			}
			if !strings.Contains(prompt, "RSI > 70") {
				t.Errorf("prompt missing RSI categories: %s", prompt)
			}
			return json.Unmarshal([]byte(`{
				"topGainers": [{"ticker": "ABC", "name": "ABC Ltd", "change": "+4.1%", "reason": "earnings beat"}],
				"topLosers": [],
				"highVolume": [],
				"overboughtRSI": [],
				"oversoldRSI": [{"ticker": "XYZ", "name": "XYZ Ltd", "change": "-6.0%", "reason": "RSI at 24"}]
			}`), out)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.ScreenStocks(context.Background(), "India")
	if err != nil {
		t.Fatalf("ScreenStocks failed: %v", err)
	}

	if len(result.TopGainers) != 1 || result.TopGainers[0].Ticker != "ABC" {
		t.Errorf("unexpected top gainers: %+v", result.TopGainers)
	}
	if len(result.OversoldRSI) != 1 {
		t.Errorf("unexpected oversold list: %+v", result.OversoldRSI)
	}
}

func TestScreenCrypto(t *testing.T) {
	mock := &mockGenAI{
		structuredFn: func(_ context.Context, prompt string, _ *genai.Schema, out any) error {
			if !strings.Contains(prompt, "Newly Listed") {
				t.Errorf("prompt missing crypto categories: %s", prompt)
			}
			return json.Unmarshal([]byte(`{
				"topGainers": [],
				"topLosers": [],
				"trending": [{"ticker": "SOL", "name": "Solana", "change": "+8.3%", "reason": "ecosystem growth"}],
				"newlyListed": []
			}`), out)
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	result, err := svc.ScreenCrypto(context.Background())
	if err != nil {
		t.Fatalf("ScreenCrypto failed: %v", err)
	}
	if len(result.Trending) != 1 || result.Trending[0].Ticker != "SOL" {
		t.Errorf("unexpected trending list: %+v", result.Trending)
	}
}

func TestScreenStocks_PropagatesError(t *testing.T) {
	mock := &mockGenAI{
		structuredFn: func(_ context.Context, _ string, _ *genai.Schema, _ any) error {
			return fmt.Errorf("model unavailable")
		},
	}
	svc := NewService(mock, common.NewSilentLogger())

	if _, err := svc.ScreenStocks(context.Background(), "India"); err == nil {
		t.Fatal("expected error to propagate")
	}
}
