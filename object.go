package partialjson

// completeObject walks a JSON object as a loop over Key / Colon / Value /
// ExpectCommaOrClose, mirroring completeArray's comma-dropping policy
// for lastValidIndex. A truncated key is closed with its quote, a
// synthesised "null" value, and the closing brace all in one suffix; a
// missing colon or value synthesises just enough to finish the current
// member before closing.
func completeObject(v *runeView, start int, depth int, cfg CompleterConfig) (CompletionResult, error) {
	i := skipWhitespace(v, start+1) // consume '{', skip whitespace
	lastValidIndex := i

	for {
		// Key
		r, ok := v.at(i)
		switch {
		case ok && r == '}':
			return AlreadyComplete{}, nil
		case !ok:
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		case r != '"':
			// Unexpected scalar where a key was expected: best-effort
			// close before it, same policy as the array's "any other
			// scalar" rule.
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		}

		keyRes := completeString(v, i)
		if ns, isNeedsSuffix := keyRes.(NeedsSuffix); isNeedsSuffix {
			return NeedsSuffix{Suffix: ns.Suffix + ": null}", EndIndex: ns.EndIndex}, nil
		}
		keyEnd := walkStringEnd(v, i)
		if keyEnd == i {
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		}
		i = skipWhitespace(v, keyEnd)

		// Colon
		r, ok = v.at(i)
		if !ok || r != ':' {
			return NeedsSuffix{Suffix: ": null}", EndIndex: i}, nil
		}
		i = skipWhitespace(v, i+1)

		// Value
		r, ok = v.at(i)
		if !ok {
			return NeedsSuffix{Suffix: "null}", EndIndex: i}, nil
		}
		res, err := completeValue(v, i, depth, cfg)
		if err != nil {
			return nil, err
		}
		if ns, isNeedsSuffix := res.(NeedsSuffix); isNeedsSuffix {
			return NeedsSuffix{Suffix: ns.Suffix + "}", EndIndex: ns.EndIndex}, nil
		}
		end, err := locateEndOfValue(v, i, depth, cfg)
		if err != nil {
			return nil, err
		}
		if end == i {
			// The scalar at i did not start a recognisable value; close
			// before it rather than treat it as a value.
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		}
		lastValidIndex = end
		i = skipWhitespace(v, end)

		// ExpectCommaOrClose
		r, ok = v.at(i)
		switch {
		case !ok:
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		case r == '}':
			return AlreadyComplete{}, nil
		case r != ',':
			return NeedsSuffix{Suffix: "}", EndIndex: lastValidIndex}, nil
		}

		i = skipWhitespace(v, i+1) // consume ',' and go back to Key
	}
}
