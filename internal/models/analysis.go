package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Categorical axes produced by the model. Values outside these sets are
// rejected by schema validation before a result reaches the view-model.
const (
	TrendBullish  = "Bullish"
	TrendBearish  = "Bearish"
	TrendSideways = "Sideways"

	MomentumStrong  = "Strong"
	MomentumWeak    = "Weak"
	MomentumNeutral = "Neutral"

	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"

	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// AISummary is the four-axis categorical summary attached to every analysis.
type AISummary struct {
	Trend      string `json:"trend"`
	Momentum   string `json:"momentum"`
	Volatility string `json:"volatility"`
	RiskLevel  string `json:"riskLevel"`
}

// StockFundamentals holds ratio/percentage metrics where downstream
// comparison is expected, so every field is numeric.
type StockFundamentals struct {
	PERatio       float64 `json:"peRatio"`
	PBRatio       float64 `json:"pbRatio"`
	SectorPE      float64 `json:"sectorPe"`
	EPS           float64 `json:"eps"`
	DividendYield float64 `json:"dividendYield"`
	Beta          float64 `json:"beta"`
	ROI           float64 `json:"roi"`
	CAGR5Y        float64 `json:"cagr5y"`
}

// StockTechnicals holds price-level indicators.
type StockTechnicals struct {
	Week52High      float64 `json:"52WeekHigh"`
	Week52Low       float64 `json:"52WeekLow"`
	MovingAvg50Day  float64 `json:"movingAverage50Day"`
	MovingAvg200Day float64 `json:"movingAverage200Day"`
	RSI             float64 `json:"rsi"`
	SupportLevel    float64 `json:"supportLevel"`
	ResistanceLevel float64 `json:"resistanceLevel"`
}

// StockBalanceSheet holds statement magnitudes. Large money values are
// formatted strings (unit suffixes matter for display); ratios are numeric.
type StockBalanceSheet struct {
	TotalAssets       string  `json:"totalAssets"`
	TotalLiabilities  string  `json:"totalLiabilities"`
	TotalEquity       string  `json:"totalEquity"`
	DebtToEquityRatio float64 `json:"debtToEquityRatio"`
	CurrentRatio      float64 `json:"currentRatio"`
}

// StockPNL holds profit & loss magnitudes, same string/number split as the
// balance sheet.
type StockPNL struct {
	TotalRevenue    string  `json:"totalRevenue"`
	GrossProfit     string  `json:"grossProfit"`
	NetIncome       string  `json:"netIncome"`
	EBITDA          string  `json:"ebitda"`
	NetProfitMargin float64 `json:"netProfitMargin"`
}

// Stakeholder is one entry in the ordered top-holders list. Shares is a
// formatted string (e.g. "1.7B").
type Stakeholder struct {
	Name       string  `json:"name"`
	Shares     string  `json:"shares"`
	Percentage float64 `json:"percentage"`
}

// StockAnalysisResult is the stock variant of an asset analysis.
type StockAnalysisResult struct {
	Overview          string            `json:"overview"`
	NewsAnalysis      string            `json:"newsAnalysis"`
	InvestmentOutlook string            `json:"investmentOutlook"`
	MarketSentiment   string            `json:"marketSentiment"`
	Fundamentals      StockFundamentals `json:"fundamentals"`
	Technicals        StockTechnicals   `json:"technicals"`
	BalanceSheet      StockBalanceSheet `json:"balanceSheet"`
	PNL               StockPNL          `json:"pnl"`
	Stakeholders      []Stakeholder     `json:"stakeholders"`
	AISummary         AISummary         `json:"aiSummary"`
}

// Tokenomics holds supply and volume figures, all formatted strings.
type Tokenomics struct {
	MarketCap         string `json:"marketCap"`
	CirculatingSupply string `json:"circulatingSupply"`
	TotalSupply       string `json:"totalSupply"`
	MaxSupply         string `json:"maxSupply"`
	TradingVolume24H  string `json:"tradingVolume24h"`
}

// OnChainMetrics holds network activity figures, all formatted strings.
type OnChainMetrics struct {
	ActiveAddresses    string `json:"activeAddresses"`
	TransactionCount24 string `json:"transactionCount24h"`
	TotalValueLocked   string `json:"totalValueLocked"`
	HashRate           string `json:"hashRate"`
}

// CryptoAnalysisResult is the crypto variant of an asset analysis.
type CryptoAnalysisResult struct {
	Overview          string         `json:"overview"`
	NewsAnalysis      string         `json:"newsAnalysis"`
	InvestmentOutlook string         `json:"investmentOutlook"`
	MarketSentiment   string         `json:"marketSentiment"`
	Tokenomics        Tokenomics     `json:"tokenomics"`
	OnChainMetrics    OnChainMetrics `json:"onChainMetrics"`
	AISummary         AISummary      `json:"aiSummary"`
}

// AnalysisResult is the sum of the two analysis variants. Exactly one of
// Stock and Crypto is non-nil. On the wire the variant is discriminated
// structurally: a record carrying a "fundamentals" field is the stock
// variant, anything else is crypto.
type AnalysisResult struct {
	Stock  *StockAnalysisResult  `json:"-"`
	Crypto *CryptoAnalysisResult `json:"-"`
}

// IsStock reports whether the result is the stock variant.
func (a *AnalysisResult) IsStock() bool {
	return a.Stock != nil
}

// Summary returns the categorical summary of whichever variant is present.
func (a *AnalysisResult) Summary() AISummary {
	if a.Stock != nil {
		return a.Stock.AISummary
	}
	if a.Crypto != nil {
		return a.Crypto.AISummary
	}
	return AISummary{}
}

// MarshalJSON flattens the populated variant.
func (a AnalysisResult) MarshalJSON() ([]byte, error) {
	if a.Stock != nil {
		return json.Marshal(a.Stock)
	}
	if a.Crypto != nil {
		return json.Marshal(a.Crypto)
	}
	return []byte("null"), nil
}

// UnmarshalJSON discriminates the variant by probing for a "fundamentals"
// field, mirroring how every consumer distinguishes the two shapes.
func (a *AnalysisResult) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to probe analysis variant: %w", err)
	}

	if _, ok := probe["fundamentals"]; ok {
		var stock StockAnalysisResult
		if err := json.Unmarshal(data, &stock); err != nil {
			return err
		}
		a.Stock = &stock
		a.Crypto = nil
		return nil
	}

	var crypto CryptoAnalysisResult
	if err := json.Unmarshal(data, &crypto); err != nil {
		return err
	}
	a.Crypto = &crypto
	a.Stock = nil
	return nil
}

// KeyMetrics is the structured block of a market overview.
type KeyMetrics struct {
	MarketSentiment string  `json:"marketSentiment"`
	VolatilityIndex float64 `json:"volatilityIndex"`
	RiskLevel       string  `json:"riskLevel"`
	GrowthPotential string  `json:"growthPotential"`
	CAGR5Y          float64 `json:"cagr5y"`
}

// MarketOverviewResult is the whole-market analysis for an asset class in
// one country, shown before any single asset is selected.
type MarketOverviewResult struct {
	Overview          string     `json:"overview"`
	NewsAnalysis      string     `json:"newsAnalysis"`
	InvestmentOutlook string     `json:"investmentOutlook"`
	KeyMetrics        KeyMetrics `json:"keyMetrics"`
}
