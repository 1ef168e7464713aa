package gemini

import (
	"fmt"
	"strings"
)

// The contract layer produces exactly four error kinds. ModelError covers
// the hosted call itself failing (network/auth/quota) or returning no
// usable text; SchemaParseError covers a successful call whose text did not
// parse as JSON; SchemaValidationError covers valid JSON that does not
// satisfy the requested schema; StreamError covers a chat stream that
// terminated abnormally mid-turn.

// ModelError indicates the hosted model call itself failed.
type ModelError struct {
	Op  string
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model request failed (%s): %v", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// SchemaParseError indicates the model responded but its text was not
// valid JSON.
type SchemaParseError struct {
	Err error
	Raw string
}

func (e *SchemaParseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *SchemaParseError) Unwrap() error { return e.Err }

// SchemaValidationError indicates the parsed JSON does not satisfy the
// requested schema: a required field is missing, an enum value is outside
// its allowed set, or a field has the wrong primitive type.
type SchemaValidationError struct {
	Violations []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("response violates schema: %s", strings.Join(e.Violations, "; "))
}

// StreamError indicates a chat stream terminated abnormally mid-turn.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("chat stream failed: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
