package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-1", "jane@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "jane@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
