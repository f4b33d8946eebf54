package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenTokensRoundTrip(t *testing.T) {
	a := New("test-secret")

	access, refresh, err := a.GenTokens(42, RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := a.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserId)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestValidateTokenWrongKey(t *testing.T) {
	a := New("test-secret")
	other := New("other-secret")

	access, _, err := a.GenTokens(1, RoleEmployee)
	require.NoError(t, err)

	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	a := New("test-secret")

	access, refresh, err := a.GenTokens(7, RoleAdmin)
	require.NoError(t, err)

	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err)

	claims, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.Type)
	assert.Equal(t, 7, claims.UserId)
}

func TestClaimsAuthorized(t *testing.T) {
	claims := Claims{Role: RoleAdmin}

	assert.True(t, claims.Authorized(RoleAdmin))
	assert.True(t, claims.Authorized(RoleEmployee, RoleAdmin))
	assert.False(t, claims.Authorized(RoleEmployee))
	assert.False(t, claims.Authorized())
}
