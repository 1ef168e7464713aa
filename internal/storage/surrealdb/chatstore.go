package surrealdb

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/models"
)

// ChatStore persists chat transcripts keyed by session ID.
type ChatStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewChatStore(db *surrealdb.DB, logger *common.Logger) *ChatStore {
	return &ChatStore{
		db:     db,
		logger: logger,
	}
}

func transcriptRecordID(sessionID string) surrealmodels.RecordID {
	return surrealmodels.NewRecordID("chat_transcript", sessionID)
}

func (s *ChatStore) GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	tr, err := surrealdb.Select[models.ChatTranscript](ctx, s.db, transcriptRecordID(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to select transcript: %w", err)
	}
	if tr == nil || tr.SessionID == "" {
		return nil, fmt.Errorf("transcript not found")
	}
	return tr, nil
}

func (s *ChatStore) SaveTranscript(ctx context.Context, transcript *models.ChatTranscript) error {
	sql := "UPSERT $rid CONTENT $data"
	vars := map[string]any{
		"rid":  transcriptRecordID(transcript.SessionID),
		"data": transcript,
	}

	if _, err := surrealdb.Query[[]models.ChatTranscript](ctx, s.db, sql, vars); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}

func (s *ChatStore) ListTranscripts(ctx context.Context, userID string) ([]*models.ChatTranscript, error) {
	sql := "SELECT * FROM chat_transcript WHERE userId = $user ORDER BY updatedAt DESC"
	vars := map[string]any{"user": userID}

	results, err := surrealdb.Query[[]models.ChatTranscript](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}

	var transcripts []*models.ChatTranscript
	if results != nil && len(*results) > 0 {
		for i := range (*results)[0].Result {
			transcripts = append(transcripts, &(*results)[0].Result[i])
		}
	}
	return transcripts, nil
}
