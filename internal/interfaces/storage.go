// Package interfaces defines service contracts for MarketLens
package interfaces

import (
	"context"

	"github.com/marketlens/marketlens/internal/models"
)

// StorageManager provides access to all storage areas.
type StorageManager interface {
	WatchlistStore() WatchlistStore
	ChatStore() ChatStore
	Close() error
}

// WatchlistStore persists per-user watchlists, one record per (user, class).
type WatchlistStore interface {
	// GetWatchlist retrieves a user's watchlist for an asset class
	GetWatchlist(ctx context.Context, userID string, class models.AssetClass) (*models.UserWatchlist, error)

	// SaveWatchlist upserts a watchlist
	SaveWatchlist(ctx context.Context, watchlist *models.UserWatchlist) error

	// DeleteWatchlist removes a watchlist
	DeleteWatchlist(ctx context.Context, userID string, class models.AssetClass) error
}

// ChatStore persists chat transcripts keyed by session ID.
type ChatStore interface {
	// GetTranscript retrieves a transcript by session ID
	GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error)

	// SaveTranscript upserts a transcript
	SaveTranscript(ctx context.Context, transcript *models.ChatTranscript) error

	// ListTranscripts returns all transcripts for a user
	ListTranscripts(ctx context.Context, userID string) ([]*models.ChatTranscript, error)
}
