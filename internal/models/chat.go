package models

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn in a conversation. The per-session sequence is
// ordered and append-only.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatTranscript is the persisted record of one chat session, keyed by
// session ID and scoped to the asset it was opened for.
type ChatTranscript struct {
	SessionID string        `json:"sessionId"`
	UserID    string        `json:"userId"`
	AssetName string        `json:"assetName"`
	AssetType AssetClass    `json:"assetType"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
