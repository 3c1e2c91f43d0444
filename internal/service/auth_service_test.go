package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService("open-sesame", "test-secret")

	resp, err := svc.Login("user@example.com", "open-sesame")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.UserID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService("open-sesame", "test-secret")

	_, err := svc.Login("user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("", "open-sesame")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := NewAuthService("open-sesame", "test-secret")
	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService("open-sesame", "different-secret")
	resp, err := other.Login("user@example.com", "open-sesame")
	require.NoError(t, err)
	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserIDForEmail_Stable(t *testing.T) {
	assert.Equal(t, UserIDForEmail("a@b.com"), UserIDForEmail("a@b.com"))
	assert.NotEqual(t, UserIDForEmail("a@b.com"), UserIDForEmail("c@d.com"))
}
