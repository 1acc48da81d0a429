package utils

import (
	"testing"
	"time"

	"github.com/neo11221/wenhong-cramschool/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func TestGenerateAndValidateJWT(t *testing.T) {
	cfg := testConfig("test-secret")

	token, expiresAt, err := GenerateJWT("user-1", "ADMIN", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "ADMIN", testConfig("secret-a"))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testConfig("secret-b"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testConfig("test-secret"))
	assert.Error(t, err)
}
