package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-booking/models/user"
)

const testSecret = "test-secret-key-for-tokens"

func TestIssueAndParse(t *testing.T) {
	svc := NewService(testSecret, 24*time.Hour)

	signed, err := svc.Issue("alice@example.com", 42, user.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, user.RoleCustomer, claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.Expiry, 5*time.Second)
}

func TestParse_TamperedToken(t *testing.T) {
	svc := NewService(testSecret, 24*time.Hour)

	signed, err := svc.Issue("bob@example.com", 7, user.RoleOfficer)
	require.NoError(t, err)

	// Flip a character inside the payload segment.
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	svc := NewService(testSecret, 24*time.Hour)
	other := NewService("a-different-secret", 24*time.Hour)

	signed, err := svc.Issue("bob@example.com", 7, user.RoleOfficer)
	require.NoError(t, err)

	_, err = other.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	svc := NewService(testSecret, 24*time.Hour)

	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsExpired(t *testing.T) {
	fresh := NewService(testSecret, 24*time.Hour)
	signed, err := fresh.Issue("carol@example.com", 3, user.RoleCustomer)
	require.NoError(t, err)
	assert.False(t, fresh.IsExpired(signed))

	stale := NewService(testSecret, -time.Hour)
	expired, err := stale.Issue("carol@example.com", 3, user.RoleCustomer)
	require.NoError(t, err)
	assert.True(t, stale.IsExpired(expired))

	assert.True(t, fresh.IsExpired("garbage"))
}

func TestValidate(t *testing.T) {
	svc := NewService(testSecret, 24*time.Hour)
	signed, err := svc.Issue("dave@example.com", 9, user.RoleCustomer)
	require.NoError(t, err)

	assert.NoError(t, svc.Validate(signed, "dave@example.com"))
	assert.ErrorIs(t, svc.Validate(signed, "mallory@example.com"), ErrWrongSubject)

	stale := NewService(testSecret, -time.Hour)
	expired, err := stale.Issue("dave@example.com", 9, user.RoleCustomer)
	require.NoError(t, err)
	assert.ErrorIs(t, stale.Validate(expired, "dave@example.com"), ErrTokenExpired)
}
