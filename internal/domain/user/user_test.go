package user

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/authorization"
)

type stubHasher struct {
	hashErr   error
	verifyErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	return "hashed:" + password, nil
}

func (s *stubHasher) Verify(password, hash string) error {
	if s.verifyErr != nil {
		return s.verifyErr
	}
	if "hashed:"+password != hash {
		return errors.New("password verification failed")
	}
	return nil
}

func mustEmail(t *testing.T, s string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	email := mustEmail(t, "citizen@example.com")

	u, err := NewUser(email, "Citizen", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "citizen@example.com", u.Email().String())
	assert.Equal(t, "Citizen", u.Name())
	assert.Equal(t, "9876543210", u.Phone())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, authorization.RoleUser, u.Role())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestNewUser_Validation(t *testing.T) {
	email := mustEmail(t, "citizen@example.com")

	_, err := NewUser(nil, "Citizen", "9876543210")
	assert.Error(t, err)

	_, err = NewUser(email, "", "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = NewUser(email, strings.Repeat("x", 101), "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name exceeds maximum length")

	_, err = NewUser(email, "Citizen", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone is required")
}

func TestUser_PasswordLifecycle(t *testing.T) {
	u, err := NewUser(mustEmail(t, "citizen@example.com"), "Citizen", "9876543210")
	require.NoError(t, err)

	hasher := &stubHasher{}

	// No password yet.
	assert.Error(t, u.VerifyPassword("anything", hasher))

	password, err := vo.NewPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(password, hasher))
	assert.Equal(t, "hashed:secret123", u.PasswordHash())

	assert.NoError(t, u.VerifyPassword("secret123", hasher))
	assert.Error(t, u.VerifyPassword("wrong", hasher))
}

func TestUser_SetPasswordHash(t *testing.T) {
	u, err := NewUser(mustEmail(t, "admin@justice.gov"), "Admin", "0000000000")
	require.NoError(t, err)

	require.NoError(t, u.SetPasswordHash("precomputed"))
	assert.Equal(t, "precomputed", u.PasswordHash())

	assert.Error(t, u.SetPasswordHash(""))
}

func TestUser_GrantAdmin(t *testing.T) {
	u, err := NewUser(mustEmail(t, "admin@justice.gov"), "Admin", "0000000000")
	require.NoError(t, err)

	u.GrantAdmin()
	assert.True(t, u.IsAdmin())
	assert.Equal(t, authorization.RoleAdmin, u.Role())
}

func TestReconstructUser(t *testing.T) {
	created := time.Now().Add(-24 * time.Hour)
	u, err := ReconstructUser(mustEmail(t, "citizen@example.com"), "Citizen", "9876543210", "hash", true, created)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
	assert.Equal(t, "hash", u.PasswordHash())
	assert.Equal(t, created, u.CreatedAt())

	_, err = ReconstructUser(nil, "Citizen", "9876543210", "hash", false, created)
	assert.Error(t, err)
}
