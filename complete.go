package partialjson

// Completer runs the completion engine with a fixed configuration. The
// configuration is captured by value at construction and never mutated;
// a Completer may be shared across goroutines, each call seeing only
// its own input view.
type Completer struct {
	cfg CompleterConfig
}

// NewCompleter builds a Completer from DefaultConfig plus the given
// Options.
func NewCompleter(opts ...Option) *Completer {
	return &Completer{cfg: NewConfig(opts...)}
}

// Config returns the completer's configuration.
func (c *Completer) Config() CompleterConfig {
	return c.cfg
}

// Completion runs the completion engine over text starting at the
// scalar cursor from. It returns nil if text is already complete from
// that cursor, or a *NeedsSuffix describing the repair.
func (c *Completer) Completion(text string, from int) (*NeedsSuffix, error) {
	v := newRuneView(text)
	res, err := completeValue(v, from, 0, c.cfg)
	if err != nil {
		return nil, err
	}
	if ns, ok := res.(NeedsSuffix); ok {
		return &ns, nil
	}
	return nil, nil
}

// Complete returns text unchanged if it is already complete, else
// text[:end_index] + suffix, where suffix is the minimal text needed to
// make the result parse as JSON.
func (c *Completer) Complete(text string) (string, error) {
	ns, err := c.Completion(text, 0)
	if err != nil {
		return "", err
	}
	if ns == nil {
		return text, nil
	}
	v := newRuneView(text)
	return v.sliceString(0, ns.EndIndex) + ns.Suffix, nil
}

// defaultCompleter backs the package-level Complete/Completion
// convenience functions below; it uses DefaultConfig and is never
// mutated after construction.
var defaultCompleter = NewCompleter()

// Complete runs the completion engine with the default configuration.
func Complete(text string) (string, error) {
	return defaultCompleter.Complete(text)
}

// Completion runs the completion engine with the default configuration.
func Completion(text string, from int) (*NeedsSuffix, error) {
	return defaultCompleter.Completion(text, from)
}

// MustComplete is like Complete but panics on error. Intended for
// callers who have already established (typically via tests) that
// their input shape and configuration cannot trigger a depth or
// non-conforming-float error.
func MustComplete(text string) string {
	s, err := Complete(text)
	if err != nil {
		panic(err)
	}
	return s
}
