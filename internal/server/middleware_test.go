package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/models"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorrelationID_EchoesRequestHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationID_GeneratedWhenAbsent(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get("X-Correlation-ID"), 8)
}

func TestBearerToken_ValidClaimsSetUser(t *testing.T) {
	srv, _ := newTestServer(t)
	secret := srv.app.Config.Auth.JWTSecret

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist?class=stocks", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, jwt.MapClaims{"sub": "alice", "name": "Alice"}))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var wl models.UserWatchlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wl))
	assert.Equal(t, "alice", wl.UserID)
}

func TestBearerToken_InvalidRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", jwt.MapClaims{"sub": "alice"}))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestBearerToken_MissingSubRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	secret := srv.app.Config.Auth.JWTSecret

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, jwt.MapClaims{"name": "nobody"}))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNoAuthHeader_RunsAsLocalUser(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist?class=stocks", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var wl models.UserWatchlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wl))
	assert.Equal(t, "local", wl.UserID)
}
