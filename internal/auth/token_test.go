package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/backend/internal/auth"
	"hostelhub/backend/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleStudent,
	}
}

// TestIssueVerify_RoundTrip verifies that a freshly issued token passes
// verification and carries the user's identity claims.
func TestIssueVerify_RoundTrip(t *testing.T) {
	// Arrange
	tokens := auth.NewTokenService("test-secret", time.Hour)
	user := testUser()

	// Act
	signed, err := tokens.Issue(user)
	require.NoError(t, err)
	claims, err := tokens.Verify(signed)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

// TestVerify_WrongSecret verifies that a token signed with a different
// secret never validates.
func TestVerify_WrongSecret(t *testing.T) {
	// Arrange
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	// Act
	claims, err := verifier.Verify(signed)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestVerify_Expired verifies that a token past its expiry instant is
// rejected.
func TestVerify_Expired(t *testing.T) {
	// Arrange: negative TTL puts the expiry in the past at issuance.
	tokens := auth.NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.Issue(testUser())
	require.NoError(t, err)

	// Act
	claims, err := tokens.Verify(signed)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestVerify_Malformed verifies that structurally invalid tokens fail
// verification instead of panicking.
func TestVerify_Malformed(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	for _, tokenString := range []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
	} {
		claims, err := tokens.Verify(tokenString)
		assert.Error(t, err, "token %q should not verify", tokenString)
		assert.Nil(t, claims)
	}
}

// TestVerify_Tampered verifies that flipping payload bytes breaks the
// signature check.
func TestVerify_Tampered(t *testing.T) {
	// Arrange
	tokens := auth.NewTokenService("test-secret", time.Hour)
	signed, err := tokens.Issue(testUser())
	require.NoError(t, err)

	// Act: corrupt a byte in the middle of the payload segment.
	tampered := []byte(signed)
	tampered[len(tampered)/2] ^= 0x01
	claims, err := tokens.Verify(string(tampered))

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}
