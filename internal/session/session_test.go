package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestFromToken_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, jwt.MapClaims{"sub": "42", "username": "ayse", "exp": exp.Unix()})

	s, err := FromToken("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, "ayse", s.Username)
	assert.Equal(t, "42", s.Subject)
	assert.True(t, s.ExpiresAt.Equal(exp))
	assert.Equal(t, tok, s.Token)
	assert.True(t, s.Authenticated(time.Now()))
}

func TestFromToken_UsernameFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"preferred_username", jwt.MapClaims{"preferred_username": "p", "sub": "1"}, "p"},
		{"email", jwt.MapClaims{"email": "a@example.com", "sub": "1"}, "a@example.com"},
		{"subject", jwt.MapClaims{"sub": "user-1"}, "user-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromToken(signed(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Username)
		})
	}
}

func TestFromToken_Errors(t *testing.T) {
	_, err := FromToken("  ")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestAuthenticated(t *testing.T) {
	now := time.Now()
	expired, err := FromToken(signed(t, jwt.MapClaims{"sub": "1", "exp": now.Add(-time.Minute).Unix()}))
	require.NoError(t, err)
	noExp, err := FromToken(signed(t, jwt.MapClaims{"sub": "1"}))
	require.NoError(t, err)

	assert.False(t, expired.Authenticated(now))
	assert.True(t, noExp.Authenticated(now))
	assert.True(t, Demo().Authenticated(now))

	var none *Session
	assert.False(t, none.Authenticated(now))
}
