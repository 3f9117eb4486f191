package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"sentenceclash/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const PlayerContextKey ContextKey = "player"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *security.PlayerTokens
	csrf    *security.CSRFGenerator
	limiter *security.RateLimiter
	ttl     time.Duration
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.PlayerTokens, csrf *security.CSRFGenerator, limiter *security.RateLimiter, ttl time.Duration) *Middleware {
	return &Middleware{tokens: tokens, csrf: csrf, limiter: limiter, ttl: ttl}
}

// Player identifies the browser from its signed cookie, issuing a new player ID
// when the cookie is missing or invalid. New IDs are rate limited per client IP.
// The cookie is re-signed on every request so active players never expire.
func (m *Middleware) Player(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var playerID string
		if cookie, err := r.Cookie(security.PlayerCookieName); err == nil {
			playerID, _ = m.tokens.Verify(cookie.Value)
		}

		if playerID == "" {
			if !m.limiter.Allow(security.GetClientIP(r)) {
				respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
				return
			}
			playerID = security.NewPlayerID()
		}

		token, err := m.tokens.Issue(playerID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to issue player token", err)
			return
		}
		http.SetCookie(w, security.PlayerCookie(r, token, m.ttl))

		ctx := context.WithValue(r.Context(), PlayerContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// RequireCSRF rejects state-changing requests without the player's CSRF token.
// It must run inside Player.
func (m *Middleware) RequireCSRF(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.csrf.Valid(GetPlayerID(r.Context()), security.RequestToken(r)) {
			respondWithError(w, http.StatusForbidden, ErrInvalidCSRFToken, "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetPlayerID retrieves the player ID from the request context
func GetPlayerID(ctx context.Context) string {
	id, _ := ctx.Value(PlayerContextKey).(string)
	return id
}
