package partialjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteArray(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple numbers", "[1, 2, 3", "[1, 2, 3]"},
		{"nested", "[[1, 2], [3,", "[[1, 2], [3]]"},
		{"trailing comma dropped", "[1, 2,", "[1, 2]"},
		{"empty after whitespace", "[  ", "[  ]"},
		{"already complete", "[1, 2]", "[1, 2]"},
		{"nested strings", `{"name": "Alice", "tags": ["swift", "json"`, `{"name": "Alice", "tags": ["swift", "json"]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newRuneView(tc.input)
			res, err := completeValue(v, 0, 0, cfg)
			require.NoError(t, err)
			var got string
			switch r := res.(type) {
			case AlreadyComplete:
				got = tc.input
			case NeedsSuffix:
				got = v.sliceString(0, r.EndIndex) + r.Suffix
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCompleteArrayUnexpectedScalarAfterComma(t *testing.T) {
	cfg := DefaultConfig()
	v := newRuneView("[1,,2]")
	res, err := completeValue(v, 0, 0, cfg)
	require.NoError(t, err)
	ns, ok := res.(NeedsSuffix)
	require.Truef(t, ok, "expected NeedsSuffix for '[1,,2]', got %#v", res)
	got := v.sliceString(0, ns.EndIndex) + ns.Suffix
	require.Equal(t, "[1]", got)
}
