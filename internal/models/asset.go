// Package models defines the data structures for MarketLens
package models

import "strings"

// AssetClass identifies the kind of tradable asset a request concerns.
type AssetClass string

const (
	AssetClassStocks AssetClass = "stocks"
	AssetClassCrypto AssetClass = "cryptocurrency"
)

// Valid reports whether the asset class is one of the known values.
func (c AssetClass) Valid() bool {
	return c == AssetClassStocks || c == AssetClassCrypto
}

// WatchlistItem identifies a tradable asset. Ticker is the stable lookup
// key within a given asset class's watchlist.
type WatchlistItem struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	CountryCode  string `json:"countryCode,omitempty"`
	CurrencyCode string `json:"currencyCode"`
}

// UserWatchlist holds one user's watchlist for a single asset class.
type UserWatchlist struct {
	UserID string          `json:"userId"`
	Class  AssetClass      `json:"class"`
	Items  []WatchlistItem `json:"items"`
}

// FindByTicker returns the item matching ticker (case-insensitive) and its
// index, or (zero, -1) when absent.
func (w *UserWatchlist) FindByTicker(ticker string) (WatchlistItem, int) {
	for i, item := range w.Items {
		if strings.EqualFold(item.Ticker, ticker) {
			return item, i
		}
	}
	return WatchlistItem{}, -1
}

// CountryCurrency maps a country code to its trading currency.
var CountryCurrency = map[string]string{
	"IN": "INR",
}

// CountryNames maps a country code to its display name, used when building
// model instructions that reference the home market.
var CountryNames = map[string]string{
	"IN": "India",
}

// DefaultStockWatchlist is the seed watchlist for the stocks asset class.
func DefaultStockWatchlist() []WatchlistItem {
	return []WatchlistItem{
		{Ticker: "RELIANCE.NS", Name: "Reliance Industries", CountryCode: "IN", CurrencyCode: "INR"},
		{Ticker: "TCS.NS", Name: "Tata Consultancy", CountryCode: "IN", CurrencyCode: "INR"},
		{Ticker: "HDFCBANK.NS", Name: "HDFC Bank Ltd.", CountryCode: "IN", CurrencyCode: "INR"},
		{Ticker: "INFY.NS", Name: "Infosys Ltd.", CountryCode: "IN", CurrencyCode: "INR"},
		{Ticker: "ICICIBANK.NS", Name: "ICICI Bank Ltd.", CountryCode: "IN", CurrencyCode: "INR"},
		{Ticker: "HINDUNILVR.NS", Name: "Hindustan Unilever", CountryCode: "IN", CurrencyCode: "INR"},
	}
}

// DefaultCryptoWatchlist is the seed watchlist for the crypto asset class.
func DefaultCryptoWatchlist() []WatchlistItem {
	return []WatchlistItem{
		{Ticker: "BTC", Name: "Bitcoin", CurrencyCode: "USD"},
		{Ticker: "ETH", Name: "Ethereum", CurrencyCode: "USD"},
		{Ticker: "SOL", Name: "Solana", CurrencyCode: "USD"},
		{Ticker: "XRP", Name: "XRP", CurrencyCode: "USD"},
		{Ticker: "DOGE", Name: "Dogecoin", CurrencyCode: "USD"},
		{Ticker: "ADA", Name: "Cardano", CurrencyCode: "USD"},
	}
}

// DefaultWatchlist returns the seed watchlist for the given asset class.
func DefaultWatchlist(class AssetClass) []WatchlistItem {
	if class == AssetClassCrypto {
		return DefaultCryptoWatchlist()
	}
	return DefaultStockWatchlist()
}
