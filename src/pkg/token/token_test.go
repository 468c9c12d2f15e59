package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", "payment-gateway", time.Hour)

	raw, expiresAt, err := m.Issue("user1@example.com", Metadata{UserID: 7, FullName: "User 1"})
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claim, err := m.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user1@example.com", claim.Subject)
	assert.Equal(t, int64(7), claim.Metadata.UserID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", "payment-gateway", time.Minute)
	m.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _, err := m.Issue("user1@example.com", Metadata{})
	require.NoError(t, err)

	m.Now = time.Now
	_, err = m.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	raw, _, err := NewManager("other", "x", time.Hour).Issue("user1@example.com", Metadata{})
	require.NoError(t, err)

	_, err = NewManager("secret", "x", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", "x", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
