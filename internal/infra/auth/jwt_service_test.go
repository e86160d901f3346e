package auth

import (
	"testing"
	"time"

	"inventario/config"
	"inventario/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID, entity.RoleSeller)

	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleSeller, claims.Role)

	claims, err = svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_RejectsCrossTokenTypes(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)

	// An access token is not a refresh token and vice versa; they are signed
	// with different secrets and carry different type claims.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a-completely-different-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New(), entity.RoleSeller)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{
		accessSecret:  "test-access-secret",
		refreshSecret: "test-refresh-secret",
		accessTTL:     -time.Minute,
		refreshTTL:    time.Hour,
	}

	accessToken, _, err := svc.GenerateTokens(uuid.New(), entity.RoleSeller)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
}
