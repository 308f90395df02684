package partialjson

// FloatPolicy controls how the completer treats the non-conforming
// numeric tokens Infinity, -Infinity and NaN when they appear as the
// start of a value.
type FloatPolicy int

const (
	// Reject raises InvalidValueError when a non-conforming float token
	// is encountered. This is the default.
	Reject FloatPolicy = iota
	// Accept recognises Infinity, -Infinity and NaN as values. The
	// spellings recognised in the input are always the literal tokens
	// "Infinity", "-Infinity" and "NaN" regardless of the configured
	// output tokens below.
	Accept
)

// defaultMaxDepth is the default cap on nested array/object recursion.
const defaultMaxDepth = 64

// CompleterConfig is the immutable configuration carried by value into
// every completion call; construct one per Completer via DefaultConfig
// and Options. The only package-level instance is the DefaultConfig
// held by the Completer behind the package-level Complete and
// Completion functions, and it is never mutated.
type CompleterConfig struct {
	NonConformingFloatPolicy FloatPolicy

	// PosInfToken, NegInfToken and NaNToken name the spellings the
	// downstream decoder expects for Infinity, -Infinity and NaN once
	// NonConformingFloatPolicy is Accept. The completer itself always
	// recognises and completes the fixed canonical spellings
	// ("Infinity", "-Infinity", "NaN") regardless of these fields; they
	// are carried on the config as documentation for callers wiring up
	// their own decoder and are not currently consulted when producing
	// a completion suffix.
	PosInfToken string
	NegInfToken string
	NaNToken    string

	// MaxDepth is the positive cap on nested array/object recursion.
	MaxDepth int
}

// DefaultConfig returns the default completer configuration: reject
// non-conforming floats, and cap nesting depth at 64.
func DefaultConfig() CompleterConfig {
	return CompleterConfig{
		NonConformingFloatPolicy: Reject,
		PosInfToken:              "Infinity",
		NegInfToken:              "-Infinity",
		NaNToken:                 "NaN",
		MaxDepth:                 defaultMaxDepth,
	}
}

// Option configures a CompleterConfig at construction time.
type Option func(*CompleterConfig)

// WithMaxDepth overrides the maximum nesting depth. Values <= 0 are
// ignored and the default is kept.
func WithMaxDepth(depth int) Option {
	return func(c *CompleterConfig) {
		if depth > 0 {
			c.MaxDepth = depth
		}
	}
}

// WithNonConformingFloats switches the policy to Accept and records the
// token spellings for Infinity, -Infinity and NaN that the caller's
// decoder expects. The completer itself still recognises and completes
// only the fixed canonical spellings in the input.
func WithNonConformingFloats(posInf, negInf, nan string) Option {
	return func(c *CompleterConfig) {
		c.NonConformingFloatPolicy = Accept
		c.PosInfToken = posInf
		c.NegInfToken = negInf
		c.NaNToken = nan
	}
}

// WithStrictFloats restores the default Reject policy.
func WithStrictFloats() Option {
	return func(c *CompleterConfig) {
		c.NonConformingFloatPolicy = Reject
	}
}

// NewConfig builds a CompleterConfig from DefaultConfig plus the given
// Options, applied in order.
func NewConfig(opts ...Option) CompleterConfig {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
