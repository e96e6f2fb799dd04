package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	SetJWTIssuer("krownebase")
	defer SetJWTIssuer("")

	token, err := GenerateJWT("ops@krowne.example", "Ops", "editor", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@krowne.example", claims.Email)
	assert.Equal(t, "editor", claims.Role)
}

func TestJWTRejections(t *testing.T) {
	SetJWTSecret("test-secret")

	expired, err := GenerateJWT("ops@krowne.example", "Ops", "editor", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	SetJWTIssuer("other")
	token, err := GenerateJWT("ops@krowne.example", "Ops", "editor", time.Hour)
	require.NoError(t, err)
	SetJWTIssuer("krownebase")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
	SetJWTIssuer("")

	SetJWTSecret("rotated")
	_, err = ValidateJWT(token)
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token")
	assert.Error(t, err)
}
