// Package session holds the authenticated user for one projectdeck run.
// A Session is created once from a bearer token and passed explicitly to
// the components that need it; there is no process-wide current user.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when no bearer token is configured.
var ErrNoToken = errors.New("no token provided")

// Session describes the logged-in user. The token is not verified here:
// the API is the authority and rejects bad tokens with 401.
type Session struct {
	Token     string
	Username  string
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// FromToken decodes the claims of a JWT bearer token.
func FromToken(token string) (*Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	s := &Session{Token: token}
	if sub, err := claims.GetSubject(); err == nil {
		s.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	s.Username = usernameFrom(claims, s.Subject)
	return s, nil
}

// Demo returns an offline session used with the in-memory store.
func Demo() *Session {
	return &Session{Username: "demo"}
}

// Authenticated reports whether the session can be used at now. Demo
// sessions (no token) are always usable.
func (s *Session) Authenticated(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Token == "" {
		return s.Username == "demo"
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

func usernameFrom(claims jwt.MapClaims, fallback string) string {
	for _, key := range []string{"username", "preferred_username", "email"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return fallback
}
