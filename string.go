package partialjson

// completeString walks a quoted JSON string starting at the opening `"`
// scalar at start, honouring backslash-escape pairing with a single-bit
// escape flag that toggles on '\\' and clears on any other scalar. A
// closing '"' found while escape is false ends the string. Exhaustion of
// input leaves the string open and a closing quote is synthesised.
//
// A dangling backslash at EOF leaves escape == true; the emitted `"` is
// still a valid continuation, because appending it to a prefix ending in
// `\` yields the legal escape `\"` rather than an unterminated string.
//
// Partial unicode escapes (`\u26`) are not specially repaired: the
// string is simply closed, leaving any truncated `\uXXXX` for the
// downstream decoder to reject.
func completeString(v *runeView, start int) CompletionResult {
	i := start + 1 // skip opening quote
	escape := false
	for {
		r, ok := v.at(i)
		if !ok {
			return NeedsSuffix{Suffix: "\"", EndIndex: i}
		}
		if escape {
			escape = false
			i++
			continue
		}
		switch r {
		case '\\':
			escape = true
			i++
		case '"':
			return AlreadyComplete{}
		default:
			i++
		}
	}
}
