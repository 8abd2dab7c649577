package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", 30*24*time.Hour)

	tok, err := m.GenerateToken("665f1c2e9b1d4a3f8c7e6d5a")
	require.NoError(t, err)

	claims, err := m.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2e9b1d4a3f8c7e6d5a", claims.UserID)

	exp := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, exp)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	tok, err := issuer.GenerateToken("u1")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(tok)
	assert.Error(t, err)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	tok, err := m.GenerateToken("u1")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.VerifyToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_RejectsNoneAlgorithm(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.VerifyToken(raw)
	assert.Error(t, err)
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.VerifyToken("not-a-jwt")
	assert.Error(t, err)
}
