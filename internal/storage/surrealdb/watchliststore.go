package surrealdb

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/models"
)

// WatchlistStore persists per-user watchlists, one record per (user, class).
type WatchlistStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewWatchlistStore(db *surrealdb.DB, logger *common.Logger) *WatchlistStore {
	return &WatchlistStore{
		db:     db,
		logger: logger,
	}
}

func watchlistRecordID(userID string, class models.AssetClass) surrealmodels.RecordID {
	return surrealmodels.NewRecordID("watchlist", fmt.Sprintf("%s_%s", userID, class))
}

func (s *WatchlistStore) GetWatchlist(ctx context.Context, userID string, class models.AssetClass) (*models.UserWatchlist, error) {
	wl, err := surrealdb.Select[models.UserWatchlist](ctx, s.db, watchlistRecordID(userID, class))
	if err != nil {
		return nil, fmt.Errorf("failed to select watchlist: %w", err)
	}
	if wl == nil || wl.UserID == "" {
		return nil, fmt.Errorf("watchlist not found")
	}
	return wl, nil
}

func (s *WatchlistStore) SaveWatchlist(ctx context.Context, watchlist *models.UserWatchlist) error {
	sql := "UPSERT $rid CONTENT $data"
	vars := map[string]any{
		"rid":  watchlistRecordID(watchlist.UserID, watchlist.Class),
		"data": watchlist,
	}

	if _, err := surrealdb.Query[[]models.UserWatchlist](ctx, s.db, sql, vars); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}
	return nil
}

func (s *WatchlistStore) DeleteWatchlist(ctx context.Context, userID string, class models.AssetClass) error {
	if _, err := surrealdb.Delete[models.UserWatchlist](ctx, s.db, watchlistRecordID(userID, class)); err != nil {
		return fmt.Errorf("failed to delete watchlist: %w", err)
	}
	return nil
}
