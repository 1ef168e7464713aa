package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Browser clients connect cross-origin from the dashboard UI
	CheckOrigin: func(r *http.Request) bool { return true },
}

// createChatRequest is the body of POST /api/chat.
type createChatRequest struct {
	AssetName string            `json:"assetName"`
	AssetType models.AssetClass `json:"assetType"`
}

// chatTurnRequest is the body of POST /api/chat/{id}/messages and of each
// inbound WebSocket frame.
type chatTurnRequest struct {
	Message string `json:"message"`
}

// chatFrame is one outbound WebSocket frame. Type is "fragment" while the
// reply streams, then "done" with the full reply text.
type chatFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// handleChatCreate handles POST /api/chat.
func (s *Server) handleChatCreate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req createChatRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.AssetType == "" {
		req.AssetType = models.AssetClassStocks
	}
	if !req.AssetType.Valid() {
		WriteError(w, http.StatusBadRequest, "Unknown asset class: "+string(req.AssetType))
		return
	}

	userID := common.ResolveUserID(r.Context())
	sessionID, err := s.app.ChatService.CreateSession(r.Context(), userID, req.AssetName, req.AssetType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"sessionId": sessionID})
}

// routeChat dispatches /api/chat/{sessionID}/... subroutes.
func (s *Server) routeChat(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/chat/")
	switch {
	case strings.HasSuffix(rest, "/ws"):
		s.handleChatSocket(w, r)
	case strings.HasSuffix(rest, "/messages"):
		s.handleChatMessage(w, r)
	case strings.HasSuffix(rest, "/transcript"):
		s.handleChatTranscript(w, r)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handleChatMessage handles POST /api/chat/{sessionID}/messages. The reply
// is returned whole once its stream completes.
func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	sessionID := PathParam(r, "/api/chat/", "/messages")
	if sessionID == "" {
		WriteError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req chatTurnRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := s.app.ChatService.SendTurn(r.Context(), sessionID, req.Message, nil)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleChatTranscript handles GET /api/chat/{sessionID}/transcript.
func (s *Server) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sessionID := PathParam(r, "/api/chat/", "/transcript")
	if sessionID == "" {
		WriteError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	transcript, err := s.app.ChatService.GetTranscript(r.Context(), sessionID)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, transcript)
}

// handleChatSocket handles GET /api/chat/{sessionID}/ws. Each inbound frame
// is one user turn; reply fragments stream back as they are generated,
// followed by a "done" frame carrying the full reply.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := PathParam(r, "/api/chat/", "/ws")
	if sessionID == "" {
		WriteError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var turn chatTurnRequest
		if err := conn.ReadJSON(&turn); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Str("session", sessionID).Msg("Chat socket closed")
			}
			return
		}
		if strings.TrimSpace(turn.Message) == "" {
			conn.WriteJSON(chatFrame{Type: "error", Content: "Message is required"})
			continue
		}

		reply, err := s.app.ChatService.SendTurn(r.Context(), sessionID, turn.Message, func(fragment string) error {
			return conn.WriteJSON(chatFrame{Type: "fragment", Content: fragment})
		})
		if err != nil {
			conn.WriteJSON(chatFrame{Type: "error", Content: err.Error()})
			return
		}

		if err := conn.WriteJSON(chatFrame{Type: "done", Content: reply}); err != nil {
			return
		}
	}
}
