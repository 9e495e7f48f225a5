package utils

import (
	"testing"

	"gettrendy/config"
	"gettrendy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "ravi@example.com", models.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ravi@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "ravi@example.com", models.RoleAdmin)
	require.NoError(t, err)

	oldSecret := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "another-secret"
	defer func() { config.AppConfig.JWTSecret = oldSecret }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
