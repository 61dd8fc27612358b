package utils

import (
	"testing"

	"jewelry-shop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig() {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig()

	token, err := GenerateToken("user-1", "ada@example.com", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	setTestConfig()

	token, err := GenerateToken("user-1", "ada@example.com", "staff")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	setTestConfig()

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
