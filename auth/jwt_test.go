package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faruqt/fashion-store/auth"
	"github.com/Faruqt/fashion-store/models"
)

func TestTokenPairRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: uuid.New(), IsStaff: true}

	access, refresh, err := auth.GenerateTokenPair(user)
	require.NoError(t, err)

	claims, err := auth.ParseToken(access, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.IsSuperUser)

	refreshClaims, err := auth.ParseToken(refresh, auth.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	// each refresh token gets its own jti
	assert.NotEmpty(t, refreshClaims.ID)
	assert.NotEqual(t, claims.ID, refreshClaims.ID)
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	access, refresh, err := auth.GenerateTokenPair(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = auth.ParseToken(access, auth.TokenTypeRefresh)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	_, err = auth.ParseToken(refresh, auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	access, _, err := auth.GenerateTokenPair(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = auth.ParseToken(access, auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := auth.ParseToken("not.a.jwt", auth.TokenTypeAccess)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGenerateAccessTokenFromRefreshClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: uuid.New(), IsStaff: true, IsSuperUser: true}
	_, refresh, err := auth.GenerateTokenPair(user)
	require.NoError(t, err)

	refreshClaims, err := auth.ParseToken(refresh, auth.TokenTypeRefresh)
	require.NoError(t, err)

	access, err := auth.GenerateAccessToken(refreshClaims)
	require.NoError(t, err)

	claims, err := auth.ParseToken(access, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, claims.IsStaff)
	assert.True(t, claims.IsSuperUser)
}

func TestTTLOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "")
	assert.Equal(t, 15*time.Minute, auth.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, auth.RefreshTTL())

	t.Setenv("ACCESS_TOKEN_TTL_MIN", "5")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "48")
	assert.Equal(t, 5*time.Minute, auth.AccessTTL())
	assert.Equal(t, 48*time.Hour, auth.RefreshTTL())

	// junk falls back to the defaults
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "zero")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "-3")
	assert.Equal(t, 15*time.Minute, auth.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, auth.RefreshTTL())
}
