package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.Equal(t, "organizer", role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", time.Hour)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "other-secret")
	require.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("user-1", "organizer", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, _, err = ValidateJWT(token, "test-secret")
	require.Error(t, err)
}
