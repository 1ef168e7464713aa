// Package chat manages conversational sessions scoped to one asset each
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
	"github.com/marketlens/marketlens/internal/models"
)

// ApologyMessage is the fixed reply a turn resolves to when its stream
// fails. The session itself stays usable afterwards.
const ApologyMessage = "Sorry, I encountered an error. Please try again."

// Compile-time interface check
var _ interfaces.ChatService = (*Service)(nil)

// session pairs a live model conversation handle with its transcript.
// Turns within one session are serialized by mu.
type session struct {
	handle     interfaces.ChatSession
	transcript *models.ChatTranscript
	mu         sync.Mutex
}

// Service implements ChatService. Live conversation handles are held in
// memory; transcripts are persisted after every turn, so a transcript
// outlives its handle.
type Service struct {
	genai    interfaces.GenAIClient
	storage  interfaces.StorageManager
	logger   *common.Logger
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService creates a new chat service
func NewService(genaiClient interfaces.GenAIClient, storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		genai:    genaiClient,
		storage:  storage,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// CreateSession opens a session bound to one asset and returns its ID
func (s *Service) CreateSession(ctx context.Context, userID, assetName string, assetType models.AssetClass) (string, error) {
	if strings.TrimSpace(assetName) == "" {
		return "", fmt.Errorf("asset name is required")
	}

	handle, err := s.genai.NewChat(ctx, gemini.ChatSystemInstruction(assetName, string(assetType)))
	if err != nil {
		return "", fmt.Errorf("failed to open chat session: %w", err)
	}

	now := time.Now().UTC()
	transcript := &models.ChatTranscript{
		SessionID: uuid.NewString(),
		UserID:    userID,
		AssetName: assetName,
		AssetType: assetType,
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.ChatStore().SaveTranscript(ctx, transcript); err != nil {
		return "", fmt.Errorf("failed to persist chat session: %w", err)
	}

	s.mu.Lock()
	s.sessions[transcript.SessionID] = &session{handle: handle, transcript: transcript}
	s.mu.Unlock()

	s.logger.Info().Str("session", transcript.SessionID).Str("asset", assetName).Msg("Chat session created")
	return transcript.SessionID, nil
}

// SendTurn sends one user turn and streams reply fragments through
// onFragment; it returns the full reply once the stream completes. A
// mid-stream failure discards partial text and resolves the turn to
// ApologyMessage.
func (s *Service) SendTurn(ctx context.Context, sessionID, message string, onFragment func(fragment string) error) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("chat session '%s' not found", sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var (
		sb     strings.Builder
		failed bool
	)
	for fragment, err := range sess.handle.SendTurn(ctx, message) {
		if err != nil {
			s.logger.Warn().Err(err).Str("session", sessionID).Msg("Chat stream failed mid-turn")
			failed = true
			break
		}
		sb.WriteString(fragment)
		if onFragment != nil {
			if err := onFragment(fragment); err != nil {
				return "", fmt.Errorf("fragment delivery failed: %w", err)
			}
		}
	}

	reply := sb.String()
	if failed {
		reply = ApologyMessage
	}

	sess.transcript.Messages = append(sess.transcript.Messages,
		models.ChatMessage{Role: models.ChatRoleUser, Content: message},
		models.ChatMessage{Role: models.ChatRoleModel, Content: reply},
	)
	sess.transcript.UpdatedAt = time.Now().UTC()

	if err := s.storage.ChatStore().SaveTranscript(ctx, sess.transcript); err != nil {
		s.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to persist transcript")
	}

	return reply, nil
}

// GetTranscript returns the persisted message sequence for a session
func (s *Service) GetTranscript(ctx context.Context, sessionID string) (*models.ChatTranscript, error) {
	transcript, err := s.storage.ChatStore().GetTranscript(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return transcript, nil
}
