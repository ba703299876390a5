package token

import (
	"testing"
	"time"

	"collabnotes-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	signed, err := svc.Issue(Identity{Id: 1, Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(1), identity.Id)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestIssueWithoutSecret(t *testing.T) {
	svc := NewService("", 24*time.Hour)

	_, err := svc.Issue(Identity{Id: 1, Email: "a@x.com"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
}

func TestVerifyWithoutSecret(t *testing.T) {
	svc := NewService("", 24*time.Hour)

	_, err := svc.Verify("whatever")
	require.Error(t, err)
	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.EqualError(t, err, "invalid token")
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-one", 24*time.Hour)
	verifier := NewService("secret-two", 24*time.Hour)

	signed, err := issuer.Issue(Identity{Id: 7, Email: "b@x.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid token")
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	signed, err := svc.Issue(Identity{Id: 1, Email: "a@x.com"}, time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.EqualError(t, err, "token expired")
}

func TestIssueUsesPerCallTTL(t *testing.T) {
	svc := NewService("test-secret", time.Nanosecond)

	// The per-call TTL overrides the (deliberately tiny) default.
	signed, err := svc.Issue(Identity{Id: 1, Email: "a@x.com"}, time.Hour)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	identity, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(1), identity.Id)
}
