package surrealdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/models"
)

func newTranscript(userID, assetName string) *models.ChatTranscript {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.ChatTranscript{
		SessionID: uuid.NewString(),
		UserID:    userID,
		AssetName: assetName,
		AssetType: models.AssetClassCrypto,
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestChatStore_RoundTrip(t *testing.T) {
	db := testDB(t)
	store := NewChatStore(db, testLogger())
	ctx := context.Background()

	tr := newTranscript("local", "Bitcoin")
	tr.Messages = []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "Is BTC volatile?"},
		{Role: models.ChatRoleModel, Content: "Yes, historically very volatile."},
	}

	if err := store.SaveTranscript(ctx, tr); err != nil {
		t.Fatalf("SaveTranscript failed: %v", err)
	}

	got, err := store.GetTranscript(ctx, tr.SessionID)
	if err != nil {
		t.Fatalf("GetTranscript failed: %v", err)
	}
	if got.AssetName != "Bitcoin" || got.AssetType != models.AssetClassCrypto {
		t.Errorf("unexpected transcript identity: %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != models.ChatRoleUser || got.Messages[1].Role != models.ChatRoleModel {
		t.Errorf("message order not preserved: %+v", got.Messages)
	}
}

func TestChatStore_AppendAcrossSaves(t *testing.T) {
	db := testDB(t)
	store := NewChatStore(db, testLogger())
	ctx := context.Background()

	tr := newTranscript("local", "Ethereum")
	if err := store.SaveTranscript(ctx, tr); err != nil {
		t.Fatalf("SaveTranscript failed: %v", err)
	}

	tr.Messages = append(tr.Messages,
		models.ChatMessage{Role: models.ChatRoleUser, Content: "question"},
		models.ChatMessage{Role: models.ChatRoleModel, Content: "answer"},
	)
	tr.UpdatedAt = time.Now().UTC()
	if err := store.SaveTranscript(ctx, tr); err != nil {
		t.Fatalf("second SaveTranscript failed: %v", err)
	}

	got, err := store.GetTranscript(ctx, tr.SessionID)
	if err != nil {
		t.Fatalf("GetTranscript failed: %v", err)
	}
	if len(got.Messages) != 2 {
		t.Errorf("expected appended messages persisted, got %d", len(got.Messages))
	}
}

func TestChatStore_ListTranscriptsByUser(t *testing.T) {
	db := testDB(t)
	store := NewChatStore(db, testLogger())
	ctx := context.Background()

	for _, asset := range []string{"Bitcoin", "Solana"} {
		if err := store.SaveTranscript(ctx, newTranscript("alice", asset)); err != nil {
			t.Fatalf("SaveTranscript failed: %v", err)
		}
	}
	if err := store.SaveTranscript(ctx, newTranscript("bob", "Dogecoin")); err != nil {
		t.Fatalf("SaveTranscript failed: %v", err)
	}

	transcripts, err := store.ListTranscripts(ctx, "alice")
	if err != nil {
		t.Fatalf("ListTranscripts failed: %v", err)
	}
	if len(transcripts) != 2 {
		t.Errorf("expected 2 transcripts for alice, got %d", len(transcripts))
	}
	for _, tr := range transcripts {
		if tr.UserID != "alice" {
			t.Errorf("foreign transcript in list: %+v", tr)
		}
	}
}

func TestChatStore_GetMissing(t *testing.T) {
	db := testDB(t)
	store := NewChatStore(db, testLogger())

	if _, err := store.GetTranscript(context.Background(), uuid.NewString()); err == nil {
		t.Fatal("expected error for missing transcript")
	}
}
