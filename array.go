package partialjson

// completeArray walks a JSON array as a loop over the states
// ExpectElementOrClose / ParsingElement / ExpectCommaOrClose.
// lastValidIndex only ever advances past a value that has fully parsed;
// consuming a comma does not advance it, so a trailing comma at EOF (or
// followed by anything other than another element) is silently dropped
// rather than preserved in the synthesised suffix.
func completeArray(v *runeView, start int, depth int, cfg CompleterConfig) (CompletionResult, error) {
	i := skipWhitespace(v, start+1) // consume '[', skip whitespace
	lastValidIndex := i

	for {
		// ExpectElementOrClose
		r, ok := v.at(i)
		if ok && r == ']' {
			return AlreadyComplete{}, nil
		}
		if !ok {
			return NeedsSuffix{Suffix: "]", EndIndex: lastValidIndex}, nil
		}

		// ParsingElement
		res, err := completeValue(v, i, depth, cfg)
		if err != nil {
			return nil, err
		}
		if ns, isNeedsSuffix := res.(NeedsSuffix); isNeedsSuffix {
			return NeedsSuffix{Suffix: ns.Suffix + "]", EndIndex: ns.EndIndex}, nil
		}
		end, err := locateEndOfValue(v, i, depth, cfg)
		if err != nil {
			return nil, err
		}
		if end == i {
			// The scalar at i did not start a recognisable value at
			// all (e.g. a second ',' in "[1,,2]"): the safest
			// interpretation is to close here, before it.
			return NeedsSuffix{Suffix: "]", EndIndex: lastValidIndex}, nil
		}
		lastValidIndex = end
		i = skipWhitespace(v, end)

		// ExpectCommaOrClose
		r, ok = v.at(i)
		switch {
		case !ok:
			return NeedsSuffix{Suffix: "]", EndIndex: lastValidIndex}, nil
		case r == ']':
			return AlreadyComplete{}, nil
		case r != ',':
			// Unparseable continuation: best-effort close before it.
			return NeedsSuffix{Suffix: "]", EndIndex: lastValidIndex}, nil
		}

		i = skipWhitespace(v, i+1) // consume ',' and go back to ExpectElementOrClose
	}
}
