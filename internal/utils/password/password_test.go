package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatches(t *testing.T) {
	hash, err := Hash("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, Matches(hash, "s3cret!"))
	assert.False(t, Matches(hash, "wrong"))
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
