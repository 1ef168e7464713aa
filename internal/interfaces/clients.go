// Package interfaces defines service contracts for MarketLens
package interfaces

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

// GenAIClient provides access to the hosted generative model. Structured
// calls are constrained to a schema descriptor; the returned JSON is parsed
// and validated against that descriptor before it reaches the caller.
type GenAIClient interface {
	// GenerateText generates free-form text from a prompt
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateStructured generates schema-constrained JSON and decodes it into out
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error

	// NewChat opens a conversational session bound to a system instruction
	NewChat(ctx context.Context, systemInstruction string) (ChatSession, error)
}

// ChatSession is a capability-typed handle to one server-side conversation.
// The handle owns the conversation history; callers send one turn at a time
// and must drain a turn's fragment sequence before sending the next.
type ChatSession interface {
	// SendTurn appends a user turn and returns the model reply as a lazy,
	// finite, non-restartable sequence of text fragments in generation
	// order. A non-nil error fragment terminates the sequence.
	SendTurn(ctx context.Context, message string) iter.Seq2[string, error]
}
