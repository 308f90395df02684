package partialjson

// runeView is a read-only, scalar-indexed view over input text. The
// completion engine never exposes byte offsets outside this package;
// every cursor handed to a caller is a scalar (rune) index into the
// original text, so completion results stay stable across multi-byte
// UTF-8 sequences.
type runeView struct {
	runes []rune
}

func newRuneView(text string) *runeView {
	return &runeView{runes: []rune(text)}
}

func (v *runeView) len() int {
	return len(v.runes)
}

// at returns the scalar at i and whether i was in range.
func (v *runeView) at(i int) (rune, bool) {
	if i < 0 || i >= len(v.runes) {
		return 0, false
	}
	return v.runes[i], true
}

// sliceString returns the text between [from, to) as a string.
func (v *runeView) sliceString(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(v.runes) {
		to = len(v.runes)
	}
	if from >= to {
		return ""
	}
	return string(v.runes[from:to])
}

func isJSONWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// skipWhitespace advances i past any run of JSON whitespace.
func skipWhitespace(v *runeView, i int) int {
	for {
		r, ok := v.at(i)
		if !ok || !isJSONWhitespace(r) {
			return i
		}
		i++
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
