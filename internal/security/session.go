package security

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PlayerCookieName is the cookie carrying the signed player token
const PlayerCookieName = "quiz_session"

const playerIssuer = "sentenceclash"

// ErrInvalidPlayerToken is returned for a missing, tampered or expired player token
var ErrInvalidPlayerToken = errors.New("invalid player token")

// NewPlayerID creates a new UUID identifying one browser
func NewPlayerID() string {
	return uuid.New().String()
}

// PlayerTokens signs and verifies the player cookie. The token is an HS256 JWT whose
// subject is the player ID.
type PlayerTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewPlayerTokens creates a signer; tokens expire ttl after issue
func NewPlayerTokens(secret string, ttl time.Duration) *PlayerTokens {
	return &PlayerTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for playerID
func (p *PlayerTokens) Issue(playerID string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   playerID,
		Issuer:    playerIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign player token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the player ID
func (p *PlayerTokens) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(playerIssuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidPlayerToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: bad subject", ErrInvalidPlayerToken)
	}
	return claims.Subject, nil
}

// IsSecureRequest determines if the request is over HTTPS
// Checks TLS connection, X-Forwarded-Proto header (for reverse proxies), and URL scheme
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// PlayerCookie builds the player cookie. The Secure flag follows the request scheme.
func PlayerCookie(r *http.Request, token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     PlayerCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
