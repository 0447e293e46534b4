package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_True(t *testing.T) {
	t.Parallel()

	require.True(t, True.IsBool())
	require.False(t, True.IsZero())
	require.Equal(t, "true", True.String())
	require.Equal(t, "bool", True.Type())

	text, ok := True.Text()
	require.False(t, ok)
	require.Empty(t, text)
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	val := String("out.txt")
	require.False(t, val.IsBool())
	require.False(t, val.IsZero())
	require.Equal(t, "out.txt", val.String())
	require.Equal(t, "string", val.Type())

	text, ok := val.Text()
	require.True(t, ok)
	require.Equal(t, "out.txt", text)

	// An empty inline value is still a present string.
	empty := String("")
	require.False(t, empty.IsZero())
	require.NotEqual(t, Value{}, empty)
}

func TestValue_Zero(t *testing.T) {
	t.Parallel()

	var val Value
	require.True(t, val.IsZero())
	require.False(t, val.IsBool())
	require.Empty(t, val.String())
	require.Empty(t, val.Type())

	_, ok := val.Text()
	require.False(t, ok)
}

func TestValue_Comparable(t *testing.T) {
	t.Parallel()

	require.Equal(t, True, True)
	require.Equal(t, String("a"), String("a"))
	require.NotEqual(t, String("true"), True)
}
