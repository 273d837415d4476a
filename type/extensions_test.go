package typex

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*NullableBool, error) {
	t.Helper()
	var nb NullableBool
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&nb, "list", "")
	return &nb, fs.Parse(args)
}

func TestNullableBool(t *testing.T) {
	t.Run("Unset", func(t *testing.T) {
		nb, err := parse(t)
		require.NoError(t, err)
		assert.Nil(t, nb.Value)
		assert.Equal(t, "<nil>", nb.String())
		assert.True(t, nb.Val(true))
		assert.False(t, nb.Val(false))
	})

	t.Run("BareFlag", func(t *testing.T) {
		nb, err := parse(t, "--list")
		require.NoError(t, err)
		assert.True(t, nb.Val(false))
		assert.Equal(t, "true", nb.String())
	})

	t.Run("ExplicitFalse", func(t *testing.T) {
		nb, err := parse(t, "--list=false")
		require.NoError(t, err)
		assert.False(t, nb.Val(true))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := parse(t, "--list=maybe")
		assert.Error(t, err)
	})
}
