// Package gemini provides the typed contract layer over the Google Gemini API
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/marketlens/marketlens/internal/common"
	"github.com/marketlens/marketlens/internal/interfaces"
)

const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultRequestsPerMin = 60
	DefaultRequestTimeout = 120 * time.Second
)

// Client implements the GenAIClient interface. Every instance is constructed
// explicitly and injected into its consumers; there is no package-level
// client state.
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRateLimit sets the request rate limit in requests per minute
func WithRateLimit(perMinute int) ClientOption {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Every(time.Minute/DefaultRequestsPerMin), DefaultRequestsPerMin),
		timeout: DefaultRequestTimeout,
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateText generates free-form text from a prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &ModelError{Op: "generate", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().Str("model", c.model).Msg("Generating text")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &ModelError{Op: "generate", Err: err}
	}

	text, err := extractText(result)
	if err != nil {
		return "", &ModelError{Op: "generate", Err: err}
	}
	return text, nil
}

// GenerateStructured generates schema-constrained JSON and decodes it into
// out. The reply is parsed and validated against the same descriptor that
// constrained the call; a conforming reply and a decode into out cannot
// disagree, so callers never see partially valid data.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &ModelError{Op: "generate structured", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().Str("model", c.model).Msg("Generating structured content")

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return &ModelError{Op: "generate structured", Err: err}
	}

	text, err := extractText(result)
	if err != nil {
		return &ModelError{Op: "generate structured", Err: err}
	}

	return decodeStructured(text, schema, out)
}

// decodeStructured parses raw model output as JSON, validates it against the
// schema descriptor, and decodes it into out.
func decodeStructured(raw string, schema *genai.Schema, out any) error {
	text := strings.TrimSpace(raw)

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return &SchemaParseError{Err: err, Raw: text}
	}

	if err := validateAgainstSchema(schema, decoded); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &SchemaParseError{Err: err, Raw: text}
	}
	return nil
}

// NewChat opens a conversational session bound to a system instruction. The
// returned handle owns the conversation history; it is the only way to
// continue the conversation.
func (c *Client) NewChat(ctx context.Context, systemInstruction string) (interfaces.ChatSession, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	chat, err := c.client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		return nil, &ModelError{Op: "create chat", Err: err}
	}

	return &chatSession{chat: chat, limiter: c.limiter}, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// chatSession adapts a genai chat to the ChatSession interface. Turns are
// serialized with a mutex; the underlying history grows only on the model's
// side of a completed stream.
type chatSession struct {
	chat    *genai.Chat
	limiter *rate.Limiter
	mu      sync.Mutex
}

// SendTurn appends a user turn and returns the reply as a lazy fragment
// sequence. The sequence is finite and not restartable; a non-nil error
// terminates it.
func (s *chatSession) SendTurn(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.limiter.Wait(ctx); err != nil {
			yield("", &StreamError{Err: err})
			return
		}

		for resp, err := range s.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
			if err != nil {
				yield("", &StreamError{Err: err})
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}

// Ensure interface compliance
var (
	_ interfaces.GenAIClient = (*Client)(nil)
	_ interfaces.ChatSession = (*chatSession)(nil)
)
