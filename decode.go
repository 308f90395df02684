package partialjson

import "unicode/utf8"

// Decoder is the external, user-supplied structured-value decoder the
// façade treats as a black box: it maps a completed JSON byte slice to
// a user-defined value, or fails.
type Decoder[T any] func(data []byte) (T, error)

// StructuredDecoder pairs a Decoder with a Completer: it tries the raw
// bytes first, and only pays for completion when the raw decode fails.
// Adapted from the teacher's Client.sendRequest/decodeResponse path,
// which applies the same "try the cheap thing, fall back" shape to HTTP
// responses.
type StructuredDecoder[T any] struct {
	completer *Completer
	decode    Decoder[T]
}

// NewStructuredDecoder builds a StructuredDecoder around decode, with a
// Completer configured by the given Options.
func NewStructuredDecoder[T any](decode Decoder[T], opts ...Option) *StructuredDecoder[T] {
	return &StructuredDecoder[T]{
		completer: NewCompleter(opts...),
		decode:    decode,
	}
}

// Decode tries the raw decode first; on failure it validates UTF-8,
// runs the completion engine, and retries the decode against the
// repaired text.
func (d *StructuredDecoder[T]) Decode(data []byte) (value T, wasComplete bool, err error) {
	if v, derr := d.decode(data); derr == nil {
		return v, true, nil
	}

	if !utf8.Valid(data) {
		var zero T
		return zero, false, &InvalidUTF8DataError{}
	}

	completed, cerr := d.completer.Complete(string(data))
	if cerr != nil {
		var zero T
		return zero, false, cerr
	}

	v, derr := d.decode([]byte(completed))
	if derr != nil {
		var zero T
		return zero, false, &DecodingFailedError{Err: derr}
	}
	return v, false, nil
}

// DecodeString is Decode over a text input, transcoded to bytes
// internally.
func (d *StructuredDecoder[T]) DecodeString(text string) (T, bool, error) {
	return d.Decode([]byte(text))
}
