package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIDToken(t *testing.T, secret, audience, issuer, email string) string {
	t.Helper()
	claims := idTokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   "U1234567890",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestEmailFromIDToken(t *testing.T) {
	client := NewLineClient(1234, "channel-secret", "http://localhost/callback")

	raw := signIDToken(t, "channel-secret", "1234", issuerURL, "nimal@example.com")
	assert.Equal(t, "nimal@example.com", client.emailFromIDToken(raw))
}

func TestEmailFromIDTokenAbsentClaim(t *testing.T) {
	client := NewLineClient(1234, "channel-secret", "http://localhost/callback")

	raw := signIDToken(t, "channel-secret", "1234", issuerURL, "")
	assert.Empty(t, client.emailFromIDToken(raw))
}

func TestEmailFromIDTokenRejectsBadSignature(t *testing.T) {
	client := NewLineClient(1234, "channel-secret", "http://localhost/callback")

	raw := signIDToken(t, "someone-elses-secret", "1234", issuerURL, "nimal@example.com")
	assert.Empty(t, client.emailFromIDToken(raw))
}

func TestEmailFromIDTokenRejectsForeignAudience(t *testing.T) {
	client := NewLineClient(1234, "channel-secret", "http://localhost/callback")

	raw := signIDToken(t, "channel-secret", "9999", issuerURL, "nimal@example.com")
	assert.Empty(t, client.emailFromIDToken(raw))
}
