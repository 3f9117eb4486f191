package security

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPlayerTokens(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewPlayerTokens("secret", time.Hour)
	tokens.now = func() time.Time { return now }

	playerID := NewPlayerID()
	signed, err := tokens.Issue(playerID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got, err := tokens.Verify(signed)
	if err != nil || got != playerID {
		t.Fatalf("Verify() = %q, %v; want %q", got, err, playerID)
	}

	t.Run("other secret", func(t *testing.T) {
		other := NewPlayerTokens("different", time.Hour)
		other.now = tokens.now
		if _, err := other.Verify(signed); !errors.Is(err, ErrInvalidPlayerToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidPlayerToken", err)
		}
	})

	t.Run("tampered", func(t *testing.T) {
		if _, err := tokens.Verify(signed + "x"); !errors.Is(err, ErrInvalidPlayerToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidPlayerToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := NewPlayerTokens("secret", time.Hour)
		later.now = func() time.Time { return now.Add(2 * time.Hour) }
		if _, err := later.Verify(signed); !errors.Is(err, ErrInvalidPlayerToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidPlayerToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := tokens.Verify("not-a-token"); !errors.Is(err, ErrInvalidPlayerToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidPlayerToken", err)
		}
	})
}

func TestPlayerCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	c := PlayerCookie(r, "tok", 2*time.Hour)
	if c.Name != PlayerCookieName || c.Value != "tok" || c.MaxAge != 7200 || !c.HttpOnly {
		t.Errorf("PlayerCookie() = %+v", c)
	}
	if c.Secure {
		t.Error("plain HTTP request should not get a Secure cookie")
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if !PlayerCookie(r, "tok", time.Hour).Secure {
		t.Error("proxied HTTPS request should get a Secure cookie")
	}
}

func TestCSRF(t *testing.T) {
	g := NewCSRFGenerator("secret")
	token := g.Token("player-1")

	if !g.Valid("player-1", token) {
		t.Error("token should be valid for its player")
	}
	if g.Valid("player-2", token) {
		t.Error("token should not be valid for another player")
	}
	if g.Valid("player-1", "") || g.Valid("", token) {
		t.Error("empty values must never validate")
	}

	r := httptest.NewRequest("POST", "/quiz/check", strings.NewReader("csrf_token="+token))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := RequestToken(r); got != token {
		t.Errorf("RequestToken() from form = %q", got)
	}

	r = httptest.NewRequest("POST", "/api/quiz/check", nil)
	r.Header.Set(CSRFHeader, token)
	if got := RequestToken(r); got != token {
		t.Errorf("RequestToken() from header = %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("a") {
		t.Error("third request in the window should be refused")
	}
	if !rl.Allow("b") {
		t.Error("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("a") {
		t.Error("bucket should refill after the window")
	}

	now = now.Add(5 * time.Minute)
	rl.cleanup()
	if len(rl.visitors) != 0 {
		t.Errorf("cleanup left %d visitors", len(rl.visitors))
	}

	if !NewRateLimiter(0, time.Minute).Allow("a") {
		t.Error("zero rate should disable limiting")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, remote: "10.0.0.1:5555", want: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, remote: "10.0.0.1:5555", want: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
