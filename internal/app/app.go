// Package app wires configuration, clients, storage, and services together
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/services/analysis"
	"github.com/marketlens/marketlens/internal/services/chat"
	"github.com/marketlens/marketlens/internal/services/dashboard"
	"github.com/marketlens/marketlens/internal/services/market"
	"github.com/marketlens/marketlens/internal/services/screener"
	"github.com/marketlens/marketlens/internal/services/watchlist"
	"github.com/marketlens/marketlens/internal/storage/surrealdb"
)

// App holds all initialized services and clients. It is the shared core
// used by cmd/marketlens-server and by handler tests.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	GenAIClient      interfaces.GenAIClient
	AnalysisService  interfaces.AnalysisService
	MarketService    interfaces.MarketService
	ScreenerService  interfaces.ScreenerService
	ChatService      interfaces.ChatService
	DashboardService interfaces.DashboardService
	WatchlistService interfaces.WatchlistService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logger, storage, the model client, and
// every service. configPath may be empty, in which case the default
// resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Check provided path, MARKETLENS_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("MARKETLENS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "marketlens.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/marketlens.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	apiKey, err := common.ResolveAPIKey(config.Clients.Gemini.APIKey)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("gemini API key not configured: %w", err)
	}

	ctx := context.Background()
	genaiClient, err := gemini.NewClient(ctx, apiKey,
		gemini.WithModel(config.Clients.Gemini.Model),
		gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
		gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
		gemini.WithLogger(logger),
	)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	analysisService := analysis.NewService(genaiClient, logger)
	marketService := market.NewService(genaiClient, logger)
	screenerService := screener.NewService(genaiClient, logger)
	chatService := chat.NewService(genaiClient, storageManager, logger)
	dashboardService := dashboard.NewService(
		analysisService, marketService, chatService,
		config.Country, config.Currency, logger,
	)
	watchlistService := watchlist.NewService(storageManager, config.CountryCode, config.Currency, logger)

	logger.Info().
		Dur("startup", time.Since(startupStart)).
		Str("model", config.Clients.Gemini.Model).
		Msg("Application initialized")

	return &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		GenAIClient:      genaiClient,
		AnalysisService:  analysisService,
		MarketService:    marketService,
		ScreenerService:  screenerService,
		ChatService:      chatService,
		DashboardService: dashboardService,
		WatchlistService: watchlistService,
		StartupTime:      time.Now(),
	}, nil
}

// Close releases storage connections.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
