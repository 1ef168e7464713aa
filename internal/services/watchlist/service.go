// Package watchlist provides per-user watchlist management services
package watchlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// Compile-time interface check
var _ interfaces.WatchlistService = (*Service)(nil)

// Service implements WatchlistService
type Service struct {
	storage     interfaces.StorageManager
	countryCode string
	currency    string
	logger      *common.Logger
}

// NewService creates a new watchlist service. countryCode and currency
// describe the home stock market and are applied to resolved items that
// carry no market of their own.
func NewService(storage interfaces.StorageManager, countryCode, currency string, logger *common.Logger) *Service {
	return &Service{
		storage:     storage,
		countryCode: countryCode,
		currency:    currency,
		logger:      logger,
	}
}

// GetWatchlist retrieves the user's watchlist for an asset class, seeding
// it from the class defaults on first access.
func (s *Service) GetWatchlist(ctx context.Context, userID string, class models.AssetClass) (*models.UserWatchlist, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("unknown asset class '%s'", class)
	}

	wl, err := s.storage.WatchlistStore().GetWatchlist(ctx, userID, class)
	if err == nil && wl != nil {
		return wl, nil
	}

	wl = &models.UserWatchlist{
		UserID: userID,
		Class:  class,
		Items:  models.DefaultWatchlist(class),
	}
	if err := s.storage.WatchlistStore().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to seed watchlist: %w", err)
	}

	s.logger.Info().Str("user", userID).Str("class", string(class)).Msg("Watchlist seeded from defaults")
	return wl, nil
}

// AddItem adds a new item or replaces an existing one (upsert keyed on ticker)
func (s *Service) AddItem(ctx context.Context, userID string, class models.AssetClass, item models.WatchlistItem) (*models.UserWatchlist, error) {
	item.Ticker = strings.ToUpper(strings.TrimSpace(item.Ticker))
	if item.Ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	if item.Name == "" {
		item.Name = item.Ticker
	}
	if item.CurrencyCode == "" {
		item.CurrencyCode = s.defaultCurrency(class)
	}

	wl, err := s.GetWatchlist(ctx, userID, class)
	if err != nil {
		return nil, err
	}

	if _, idx := wl.FindByTicker(item.Ticker); idx >= 0 {
		wl.Items[idx] = item
	} else {
		wl.Items = append(wl.Items, item)
	}

	if err := s.storage.WatchlistStore().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("user", userID).Str("ticker", item.Ticker).Msg("Watchlist item upserted")
	return wl, nil
}

// RemoveItem removes an item by ticker
func (s *Service) RemoveItem(ctx context.Context, userID string, class models.AssetClass, ticker string) (*models.UserWatchlist, error) {
	wl, err := s.GetWatchlist(ctx, userID, class)
	if err != nil {
		return nil, err
	}

	_, idx := wl.FindByTicker(ticker)
	if idx < 0 {
		return nil, fmt.Errorf("ticker '%s' not found in watchlist", strings.ToUpper(strings.TrimSpace(ticker)))
	}
	wl.Items = append(wl.Items[:idx], wl.Items[idx+1:]...)

	if err := s.storage.WatchlistStore().SaveWatchlist(ctx, wl); err != nil {
		return nil, fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("user", userID).Str("ticker", ticker).Msg("Watchlist item removed")
	return wl, nil
}

// Resolve maps free-text search input to a watchlist item. A query matching
// an existing item's ticker or name returns that item; anything else is
// echoed back as both ticker and name with the class's default currency.
func (s *Service) Resolve(ctx context.Context, userID string, class models.AssetClass, query string) (models.WatchlistItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.WatchlistItem{}, fmt.Errorf("search query is required")
	}

	wl, err := s.GetWatchlist(ctx, userID, class)
	if err != nil {
		return models.WatchlistItem{}, err
	}

	if item, idx := wl.FindByTicker(query); idx >= 0 {
		return item, nil
	}
	for _, item := range wl.Items {
		if strings.EqualFold(item.Name, query) {
			return item, nil
		}
	}

	ticker := strings.ToUpper(query)
	item := models.WatchlistItem{
		Ticker:       ticker,
		Name:         ticker,
		CurrencyCode: s.defaultCurrency(class),
	}
	if class == models.AssetClassStocks {
		item.CountryCode = s.countryCode
	}
	return item, nil
}

func (s *Service) defaultCurrency(class models.AssetClass) string {
	if class == models.AssetClassCrypto {
		return "USD"
	}
	if s.currency != "" {
		return s.currency
	}
	return "INR"
}
