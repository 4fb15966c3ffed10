package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	f, err := New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Filter{Offset: 0, Limit: DefaultLimit}, f)
}

func TestNew_Bounds(t *testing.T) {
	_, err := New(0, 101)
	assert.Error(t, err)

	_, err = New(-1, 10)
	assert.Error(t, err)

	f, err := New(20, 100)
	require.NoError(t, err)
	assert.Equal(t, Filter{Offset: 20, Limit: 100}, f)
}
