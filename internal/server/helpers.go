package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/marketlens/marketlens/internal/clients/gemini"
	"github.com/marketlens/marketlens/internal/services/dashboard"
)

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorWithCode writes a JSON error response with an error code.
func WriteErrorWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// WriteServiceError maps service-layer failures to HTTP responses. Model
// contract failures surface as bad gateway with a machine-readable code so
// clients can distinguish an unreachable model from a malformed reply.
func WriteServiceError(w http.ResponseWriter, err error) {
	var (
		modelErr *gemini.ModelError
		parseErr *gemini.SchemaParseError
		valErr   *gemini.SchemaValidationError
	)

	switch {
	case errors.Is(err, dashboard.ErrSuperseded):
		WriteErrorWithCode(w, http.StatusConflict, "Selection superseded by a newer request", "superseded")
	case errors.As(err, &valErr):
		WriteErrorWithCode(w, http.StatusBadGateway, "AI response failed schema validation", "schema_validation")
	case errors.As(err, &parseErr):
		WriteErrorWithCode(w, http.StatusBadGateway, "AI response was not valid JSON", "schema_parse")
	case errors.As(err, &modelErr):
		WriteErrorWithCode(w, http.StatusBadGateway, "AI model request failed", "model")
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, "Request body is required")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

// PathParam extracts a path parameter from the URL path.
// For a pattern like /api/assets/{ticker}/history, calling
// PathParam(r, "/api/assets/", "/history") extracts the {ticker} part.
func PathParam(r *http.Request, prefix, suffix string) string {
	path := r.URL.Path
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	rest := path[len(prefix):]
	if suffix != "" {
		idx := strings.Index(rest, suffix)
		if idx < 0 {
			return rest
		}
		return rest[:idx]
	}
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx]
	}
	return rest
}
