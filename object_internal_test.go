package partialjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteObject(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"truncated value", `{"name": "Alice", "age"`, `{"name": "Alice", "age": null}`},
		{"truncated key", `{"name": "Alice", "ag`, `{"name": "Alice", "ag": null}`},
		{"missing colon", `{"age" }`, `{"age" : null}`},
		{"dangling colon", `{"name": "Alice", "age":`, `{"name": "Alice", "age":null}`},
		{"trailing comma dropped", `{"a": 1,`, `{"a": 1}`},
		{"empty after whitespace", "{  ", "{  }"},
		{"already complete", `{"a": 1}`, `{"a": 1}`},
		{"nested object", `{"a": {"b": 1`, `{"a": {"b": 1}}`},
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

func TestCompleteObjectUnexpectedScalarAsKey(t *testing.T) {
	cfg := DefaultConfig()
	v := newRuneView(`{"a": 1, 2: 3}`)
	res, err := completeValue(v, 0, 0, cfg)
	require.NoError(t, err)
	ns, ok := res.(NeedsSuffix)
	require.Truef(t, ok, "expected NeedsSuffix, got %#v", res)
	got := v.sliceString(0, ns.EndIndex) + ns.Suffix
	require.Equal(t, `{"a": 1}`, got)
}
