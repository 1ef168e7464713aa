package models

// DashboardView is the joined view-model for one selected asset. It is
// produced whole by the dashboard service (all four constituent requests
// must succeed) and replaced as a unit when the selection changes.
type DashboardView struct {
	Asset         WatchlistItem         `json:"asset"`
	Class         AssetClass            `json:"class"`
	Analysis      AnalysisResult        `json:"analysis"`
	History       []HistoricalDataPoint `json:"history"`
	RealTime      *AssetRealTimeInfo    `json:"realTime,omitempty"`
	ChatSessionID string                `json:"chatSessionId"`
}
