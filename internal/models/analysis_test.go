package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnalysisResultDiscriminatesStock(t *testing.T) {
	data := `{"overview":"o","fundamentals":{"peRatio":24.5},"aiSummary":{"trend":"Bullish"}}`

	var result AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !result.IsStock() {
		t.Fatal("expected stock variant")
	}
	if result.Crypto != nil {
		t.Fatal("crypto variant should be nil")
	}
	if result.Stock.Fundamentals.PERatio != 24.5 {
		t.Errorf("peRatio = %v, want 24.5", result.Stock.Fundamentals.PERatio)
	}
	if result.Summary().Trend != TrendBullish {
		t.Errorf("trend = %q, want %q", result.Summary().Trend, TrendBullish)
	}
}

func TestAnalysisResultDiscriminatesCrypto(t *testing.T) {
	data := `{"overview":"o","tokenomics":{"marketCap":"1.2T"},"aiSummary":{"riskLevel":"High"}}`

	var result AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if result.IsStock() {
		t.Fatal("expected crypto variant")
	}
	if result.Crypto.Tokenomics.MarketCap != "1.2T" {
		t.Errorf("marketCap = %q, want 1.2T", result.Crypto.Tokenomics.MarketCap)
	}
}

func TestAnalysisResultMarshalFlattensVariant(t *testing.T) {
	result := AnalysisResult{Stock: &StockAnalysisResult{Overview: "text"}}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"fundamentals"`) {
		t.Errorf("stock marshal missing fundamentals field: %s", data)
	}

	var back AnalysisResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !back.IsStock() {
		t.Fatal("round trip lost the stock variant")
	}
}

func TestScreenerResultDiscriminatesOnHighVolume(t *testing.T) {
	stock := `{"topGainers":[],"topLosers":[],"highVolume":[],"overboughtRSI":[],"oversoldRSI":[]}`
	crypto := `{"topGainers":[],"topLosers":[],"trending":[],"newlyListed":[]}`

	var s ScreenerResult
	if err := json.Unmarshal([]byte(stock), &s); err != nil {
		t.Fatalf("stock unmarshal failed: %v", err)
	}
	if !s.IsStock() {
		t.Fatal("expected stock screener variant")
	}

	var c ScreenerResult
	if err := json.Unmarshal([]byte(crypto), &c); err != nil {
		t.Fatalf("crypto unmarshal failed: %v", err)
	}
	if c.IsStock() || c.Crypto == nil {
		t.Fatal("expected crypto screener variant")
	}
}
