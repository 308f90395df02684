package partialjson

// locateEndOfValue finds the cursor immediately after the value starting
// at a cursor already known to parse completely. It first re-runs the
// value dispatcher at the same cursor; if that signals NeedsSuffix after
// all, its EndIndex is already the answer. Otherwise the value is walked
// scalar-by-scalar according to its kind.
func locateEndOfValue(v *runeView, start int, depth int, cfg CompleterConfig) (int, error) {
	i := skipWhitespace(v, start)

	res, err := completeValue(v, i, depth, cfg)
	if err != nil {
		return i, err
	}
	if ns, ok := res.(NeedsSuffix); ok {
		return ns.EndIndex, nil
	}

	r, ok := v.at(i)
	if !ok {
		return i, nil
	}

	switch {
	case r == '"':
		return walkStringEnd(v, i), nil
	case r == '{':
		return walkContainerEnd(v, i, '{', '}'), nil
	case r == '[':
		return walkContainerEnd(v, i, '[', ']'), nil
	case r == 't':
		return i + len("true"), nil
	case r == 'f':
		return i + len("false"), nil
	case r == 'n':
		return i + len("null"), nil
	case r == 'I':
		return i + len("Infinity"), nil
	case r == 'N':
		return i + len("NaN"), nil
	case r == '-':
		if next, ok := v.at(i + 1); ok && next == 'I' {
			return i + len("-Infinity"), nil
		}
		return walkNumberEnd(v, i), nil
	case isDigit(r):
		return walkNumberEnd(v, i), nil
	default:
		return i, nil
	}
}

// walkStringEnd walks a string known to be properly closed, returning
// the cursor after its closing quote.
func walkStringEnd(v *runeView, start int) int {
	i := start + 1
	escape := false
	for {
		r, ok := v.at(i)
		if !ok {
			return i
		}
		i++
		if escape {
			escape = false
			continue
		}
		switch r {
		case '\\':
			escape = true
		case '"':
			return i
		}
	}
}

// walkContainerEnd walks a container known to be properly closed,
// tracking nesting depth and an in-string flag (with its own escape
// bit) so that open/close scalars inside strings are ignored. Returns
// the cursor after the scalar that brings the depth counter to zero.
func walkContainerEnd(v *runeView, start int, open, close rune) int {
	depthCount := 1
	i := start + 1
	inString := false
	escape := false
	for {
		r, ok := v.at(i)
		if !ok {
			return i
		}
		i++
		if inString {
			if escape {
				escape = false
				continue
			}
			switch r {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case open:
			depthCount++
		case close:
			depthCount--
			if depthCount == 0 {
				return i
			}
		}
	}
}

// walkNumberEnd consumes the maximal run of scalars in {0-9,'.','-','+',
// 'e','E'}. This is permissive — it would accept lexically dubious runs
// like "1-2" — which is safe only because callers always pass it
// positions that have just passed the number completer's own validation.
func walkNumberEnd(v *runeView, start int) int {
	i := start
	for {
		r, ok := v.at(i)
		if !ok {
			return i
		}
		switch r {
		case '-', '+', '.', 'e', 'E':
			i++
		default:
			if isDigit(r) {
				i++
			} else {
				return i
			}
		}
	}
}
