package models

// HistoricalDataPoint is one day of OHLC prices. Date is an ISO calendar
// date ("YYYY-MM-DD"); series are ordered ascending by date.
type HistoricalDataPoint struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// AssetRealTimeInfo is a point-in-time quote snapshot. Each fetch replaces
// prior values for the same ticker; no history is retained.
type AssetRealTimeInfo struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// QuotesByTicker indexes a quote batch for lookup.
func QuotesByTicker(quotes []AssetRealTimeInfo) map[string]AssetRealTimeInfo {
	m := make(map[string]AssetRealTimeInfo, len(quotes))
	for _, q := range quotes {
		m[q.Ticker] = q
	}
	return m
}
