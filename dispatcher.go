package partialjson

// completeValue is the value dispatcher. It skips leading whitespace,
// classifies the next scalar, and delegates to the matching typed
// completer. depth is checked against cfg.MaxDepth before any
// classification happens, guarding recursion into arrays and objects.
func completeValue(v *runeView, start int, depth int, cfg CompleterConfig) (CompletionResult, error) {
	if depth >= cfg.MaxDepth {
		return nil, &DepthLimitExceededError{Limit: cfg.MaxDepth}
	}

	i := skipWhitespace(v, start)
	r, ok := v.at(i)
	if !ok {
		return AlreadyComplete{}, nil
	}

	switch {
	case r == '{':
		return completeObject(v, i, depth+1, cfg)
	case r == '[':
		return completeArray(v, i, depth+1, cfg)
	case r == '"':
		return completeString(v, i), nil
	case r == '-':
		next, hasNext := v.at(i + 1)
		if hasNext && next == 'I' {
			if cfg.NonConformingFloatPolicy == Accept {
				return completeLiteral(v, i, "-Infinity"), nil
			}
			return nil, &InvalidValueError{Token: "-Infinity"}
		}
		return completeNumber(v, i), nil
	case isDigit(r):
		return completeNumber(v, i), nil
	case r == 't':
		return completeLiteral(v, i, "true"), nil
	case r == 'f':
		return completeLiteral(v, i, "false"), nil
	case r == 'n':
		return completeLiteral(v, i, "null"), nil
	case r == 'I':
		if cfg.NonConformingFloatPolicy == Accept {
			return completeLiteral(v, i, "Infinity"), nil
		}
		return nil, &InvalidValueError{Token: "Infinity"}
	case r == 'N':
		if cfg.NonConformingFloatPolicy == Accept {
			return completeLiteral(v, i, "NaN"), nil
		}
		return nil, &InvalidValueError{Token: "NaN"}
	default:
		// Any other scalar is not a recognised value start; the caller
		// decides what to do with it. No suffix is synthesised here.
		return AlreadyComplete{}, nil
	}
}
