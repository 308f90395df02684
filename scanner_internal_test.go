package partialjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipWhitespace(t *testing.T) {
	v := newRuneView("   \t\n\r abc")
	got := skipWhitespace(v, 0)
	require.Equal(t, 7, got)
}

func TestSkipWhitespaceAtEOF(t *testing.T) {
	v := newRuneView("   ")
	got := skipWhitespace(v, 0)
	require.Equal(t, v.len(), got)
}

func TestRuneViewMultibyte(t *testing.T) {
	v := newRuneView(`"café était là \U0001F600"`)
	// Sanity: rune-indexed length differs from byte length once we add
	// an actual multi-byte scalar.
	v2 := newRuneView("héllo")
	require.Equal(t, 5, v2.len())
	r, ok := v2.at(1)
	require.True(t, ok)
	require.Equal(t, 'é', r)
	_ = v
}
