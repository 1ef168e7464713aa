package watchlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// --- mock storage ---

type mockWatchlistStore struct {
	lists map[string]*models.UserWatchlist
}

func storeKey(userID string, class models.AssetClass) string {
	return userID + "/" + string(class)
}

func (m *mockWatchlistStore) GetWatchlist(_ context.Context, userID string, class models.AssetClass) (*models.UserWatchlist, error) {
	wl, ok := m.lists[storeKey(userID, class)]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return wl, nil
}

func (m *mockWatchlistStore) SaveWatchlist(_ context.Context, wl *models.UserWatchlist) error {
	m.lists[storeKey(wl.UserID, wl.Class)] = wl
	return nil
}

func (m *mockWatchlistStore) DeleteWatchlist(_ context.Context, userID string, class models.AssetClass) error {
	delete(m.lists, storeKey(userID, class))
	return nil
}

type mockStorageManager struct {
	watchlists *mockWatchlistStore
}

func (m *mockStorageManager) WatchlistStore() interfaces.WatchlistStore { return m.watchlists }
func (m *mockStorageManager) ChatStore() interfaces.ChatStore           { return nil }
func (m *mockStorageManager) Close() error                              { return nil }

func newTestService() *Service {
	storage := &mockStorageManager{
		watchlists: &mockWatchlistStore{lists: make(map[string]*models.UserWatchlist)},
	}
	return NewService(storage, "IN", "INR", common.NewSilentLogger())
}

func TestGetWatchlist_SeedsDefaultsOnFirstAccess(t *testing.T) {
	svc := newTestService()

	wl, err := svc.GetWatchlist(context.Background(), "local", models.AssetClassStocks)
	if err != nil {
		t.Fatalf("GetWatchlist failed: %v", err)
	}

	if len(wl.Items) != 6 {
		t.Fatalf("expected 6 seeded items, got %d", len(wl.Items))
	}
	if _, idx := wl.FindByTicker("RELIANCE.NS"); idx < 0 {
		t.Error("expected RELIANCE.NS in seeded stock watchlist")
	}

	// Second access reads the persisted list, not a fresh seed
	again, err := svc.GetWatchlist(context.Background(), "local", models.AssetClassStocks)
	if err != nil {
		t.Fatalf("second GetWatchlist failed: %v", err)
	}
	if len(again.Items) != len(wl.Items) {
		t.Errorf("expected persisted list, got %d items", len(again.Items))
	}
}

func TestGetWatchlist_ClassesAreIndependent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	stocks, err := svc.GetWatchlist(ctx, "local", models.AssetClassStocks)
	if err != nil {
		t.Fatalf("stocks GetWatchlist failed: %v", err)
	}
	crypto, err := svc.GetWatchlist(ctx, "local", models.AssetClassCrypto)
	if err != nil {
		t.Fatalf("crypto GetWatchlist failed: %v", err)
	}

	if _, idx := stocks.FindByTicker("BTC"); idx >= 0 {
		t.Error("stock watchlist must not contain crypto tickers")
	}
	if _, idx := crypto.FindByTicker("BTC"); idx < 0 {
		t.Error("expected BTC in seeded crypto watchlist")
	}
}

func TestGetWatchlist_RejectsUnknownClass(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetWatchlist(context.Background(), "local", models.AssetClass("bonds")); err == nil {
		t.Fatal("expected error for unknown asset class")
	}
}

func TestAddItem_UpsertsByTicker(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	wl, err := svc.AddItem(ctx, "local", models.AssetClassStocks, models.WatchlistItem{
		Ticker: "wipro.ns", Name: "Wipro Ltd.",
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if len(wl.Items) != 7 {
		t.Fatalf("expected 7 items after add, got %d", len(wl.Items))
	}

	item, idx := wl.FindByTicker("WIPRO.NS")
	if idx < 0 {
		t.Fatal("expected WIPRO.NS after add")
	}
	if item.CurrencyCode != "INR" {
		t.Errorf("expected default currency INR, got %q", item.CurrencyCode)
	}

	// Re-adding the same ticker replaces, not duplicates
	wl, err = svc.AddItem(ctx, "local", models.AssetClassStocks, models.WatchlistItem{
		Ticker: "WIPRO.NS", Name: "Wipro Limited", CurrencyCode: "INR",
	})
	if err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}
	if len(wl.Items) != 7 {
		t.Fatalf("expected upsert to keep 7 items, got %d", len(wl.Items))
	}
	item, _ = wl.FindByTicker("WIPRO.NS")
	if item.Name != "Wipro Limited" {
		t.Errorf("expected replaced name, got %q", item.Name)
	}
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	wl, err := svc.RemoveItem(ctx, "local", models.AssetClassCrypto, "DOGE")
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(wl.Items) != 5 {
		t.Fatalf("expected 5 items after removal, got %d", len(wl.Items))
	}
	if _, idx := wl.FindByTicker("DOGE"); idx >= 0 {
		t.Error("DOGE still present after removal")
	}

	if _, err := svc.RemoveItem(ctx, "local", models.AssetClassCrypto, "DOGE"); err == nil {
		t.Error("expected error removing absent ticker")
	}
}

func TestResolve_KnownTickerReturnsWatchlistItem(t *testing.T) {
	svc := newTestService()

	item, err := svc.Resolve(context.Background(), "local", models.AssetClassStocks, "reliance.ns")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if item.Name != "Reliance Industries" {
		t.Errorf("expected watchlist item, got %+v", item)
	}
}

func TestResolve_KnownNameReturnsWatchlistItem(t *testing.T) {
	svc := newTestService()

	item, err := svc.Resolve(context.Background(), "local", models.AssetClassCrypto, "bitcoin")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if item.Ticker != "BTC" {
		t.Errorf("expected BTC, got %+v", item)
	}
}

func TestResolve_UnknownQueryEchoesWithDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	stock, err := svc.Resolve(ctx, "local", models.AssetClassStocks, "zomato.ns")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if stock.Ticker != "ZOMATO.NS" || stock.Name != "ZOMATO.NS" {
		t.Errorf("expected echoed uppercase ticker, got %+v", stock)
	}
	if stock.CurrencyCode != "INR" || stock.CountryCode != "IN" {
		t.Errorf("expected home market defaults, got %+v", stock)
	}

	crypto, err := svc.Resolve(ctx, "local", models.AssetClassCrypto, "pepe")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if crypto.CurrencyCode != "USD" {
		t.Errorf("expected USD for crypto, got %+v", crypto)
	}
}
