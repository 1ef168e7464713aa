package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScreenerStock is one ranked entry in a screener category. Change is a
// formatted percentage string (e.g. "+2.5%"); Reason is free text.
type ScreenerStock struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Change string `json:"change"`
	Reason string `json:"reason"`
}

// StockScreenerResult is the stock-market screener report.
type StockScreenerResult struct {
	TopGainers    []ScreenerStock `json:"topGainers"`
	TopLosers     []ScreenerStock `json:"topLosers"`
	HighVolume    []ScreenerStock `json:"highVolume"`
	OverboughtRSI []ScreenerStock `json:"overboughtRSI"`
	OversoldRSI   []ScreenerStock `json:"oversoldRSI"`
}

// CryptoScreenerResult is the cryptocurrency screener report.
type CryptoScreenerResult struct {
	TopGainers  []ScreenerStock `json:"topGainers"`
	TopLosers   []ScreenerStock `json:"topLosers"`
	Trending    []ScreenerStock `json:"trending"`
	NewlyListed []ScreenerStock `json:"newlyListed"`
}

// ScreenerResult is the sum of the two screener variants, discriminated
// structurally by the presence of a "highVolume" field.
type ScreenerResult struct {
	Stock  *StockScreenerResult  `json:"-"`
	Crypto *CryptoScreenerResult `json:"-"`
}

// IsStock reports whether the result is the stock variant.
func (r *ScreenerResult) IsStock() bool {
	return r.Stock != nil
}

// MarshalJSON flattens the populated variant.
func (r ScreenerResult) MarshalJSON() ([]byte, error) {
	if r.Stock != nil {
		return json.Marshal(r.Stock)
	}
	if r.Crypto != nil {
		return json.Marshal(r.Crypto)
	}
	return []byte("null"), nil
}

// UnmarshalJSON discriminates the variant by probing for "highVolume".
func (r *ScreenerResult) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to probe screener variant: %w", err)
	}

	if _, ok := probe["highVolume"]; ok {
		var stock StockScreenerResult
		if err := json.Unmarshal(data, &stock); err != nil {
			return err
		}
		r.Stock = &stock
		r.Crypto = nil
		return nil
	}

	var crypto CryptoScreenerResult
	if err := json.Unmarshal(data, &crypto); err != nil {
		return err
	}
	r.Crypto = &crypto
	r.Stock = nil
	return nil
}
