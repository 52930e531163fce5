package auth

import (
	"testing"
	"time"

	"tesotunes/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"artist", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	require.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	require.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't carry roles
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), []string{"artist"})
	require.NoError(t, err)

	claims, err := otherService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	hash1 := jwtService.HashToken("some-refresh-token")
	hash2 := jwtService.HashToken("some-refresh-token")
	hash3 := jwtService.HashToken("another-refresh-token")

	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, hash3)
	assert.Len(t, hash1, 64) // hex-encoded SHA-256
	assert.NotEqual(t, "some-refresh-token", hash1)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
