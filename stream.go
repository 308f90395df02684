package partialjson

import (
	"bufio"
	"context"
	"io"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ByteSource is the byte-at-a-time pull interface the streaming adaptor
// consumes. NextByte returns io.EOF once the source is exhausted.
type ByteSource interface {
	NextByte() (byte, error)
}

type readerByteSource struct {
	r *bufio.Reader
}

// NewReaderByteSource adapts an io.Reader into a ByteSource.
func NewReaderByteSource(r io.Reader) ByteSource {
	return &readerByteSource{r: bufio.NewReader(r)}
}

func (s *readerByteSource) NextByte() (byte, error) {
	return s.r.ReadByte()
}

// Event is one value produced by the streaming adaptor. Mid-stream,
// IsComplete reports whether the buffer it came from was already-complete
// JSON (true) or repaired by the completion engine (false). The event
// produced from the buffer left at end of stream always carries
// IsComplete = true, repaired or not; if that buffer does not decode, no
// such event is produced and the last event received is the last
// mid-stream one.
type Event[T any] struct {
	Value      T
	IsComplete bool
}

// MissingFieldClassifier reports whether a decode error represents
// legitimate incompleteness (a required field not populated yet) rather
// than a genuine malformed-input error. The streaming adaptor swallows
// the former at end-of-stream and re-raises the latter, but only when no
// value has been emitted yet; otherwise it is swallowed too. Because the
// structured decoder is a user-supplied black box, only the caller can
// classify its errors.
type MissingFieldClassifier func(error) bool

type streamConfig struct {
	missingField MissingFieldClassifier
}

// StreamOption configures a PartialStream at construction time.
type StreamOption func(*streamConfig)

// WithMissingFieldClassifier supplies the predicate used to recognise
// "missing required field" decode errors at end-of-stream.
func WithMissingFieldClassifier(f MissingFieldClassifier) StreamOption {
	return func(sc *streamConfig) {
		sc.missingField = f
	}
}

// PartialStream drives the decoder façade over a growing byte buffer
// pulled one byte at a time from a ByteSource, yielding an Event for
// every new distinct decoded value, and also for an unchanged value
// whose buffer decoded without repair. Adapted from the teacher's
// ChatCompletionStream: a goroutine owns the buffer and pushes onto a
// channel the consumer drains with Recv, with a done channel for
// cooperative cancellation.
type PartialStream[T any] struct {
	events chan Event[T]
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// NewPartialStream starts the adaptor in a background goroutine and
// returns immediately. The caller must eventually call Close.
func NewPartialStream[T any](ctx context.Context, source ByteSource, decode Decoder[T], cfg CompleterConfig, opts ...StreamOption) *PartialStream[T] {
	sc := &streamConfig{missingField: func(error) bool { return false }}
	for _, opt := range opts {
		opt(sc)
	}

	s := &PartialStream[T]{
		events: make(chan Event[T]),
		done:   make(chan struct{}),
	}
	go s.run(ctx, source, decode, cfg, sc)
	return s
}

func (s *PartialStream[T]) run(ctx context.Context, source ByteSource, decode Decoder[T], cfg CompleterConfig, sc *streamConfig) {
	defer close(s.events)

	facade := NewStructuredDecoder(decode, optionsFromConfig(cfg)...)

	var buf []byte
	var lastValue T
	haveEmitted := false
	eof := false

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			log.Info().Msg("partial json stream stopped due to context cancellation")
			return
		default:
		}

		if eof && len(buf) == 0 {
			return
		}

		if eof && len(buf) > 0 {
			value, _, err := facade.Decode(buf)
			buf = nil
			if err != nil {
				if sc.missingField(err) {
					return
				}
				if !haveEmitted {
					s.fail(err)
				} else {
					log.Debug().Err(err).Msg("partial json stream: discarding trailing decode error after prior values were emitted")
				}
				return
			}
			s.emit(Event[T]{Value: value, IsComplete: true})
			return
		}

		if len(buf) > 0 {
			value, wasComplete, err := facade.Decode(buf)
			if err != nil {
				log.Debug().Err(err).Msg("partial json stream: mid-stream decode failed, reading more bytes")
			} else {
				if !haveEmitted || !reflect.DeepEqual(value, lastValue) || wasComplete {
					lastValue = value
					haveEmitted = true
					if !s.emit(Event[T]{Value: value, IsComplete: wasComplete}) {
						return
					}
				}
				if wasComplete {
					buf = nil
				}
			}
		}

		b, err := source.NextByte()
		if err != nil {
			if err == io.EOF {
				eof = true
				continue
			}
			buf = nil
			s.fail(err)
			return
		}
		buf = append(buf, b)
	}
}

func (s *PartialStream[T]) emit(e Event[T]) bool {
	select {
	case s.events <- e:
		return true
	case <-s.done:
		return false
	}
}

func (s *PartialStream[T]) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Recv reads the next Event from the stream. It returns io.EOF once the
// stream has terminated normally or been closed; any other error means
// the underlying ByteSource failed, or the end-of-stream decode failed
// before any value was yielded.
func (s *PartialStream[T]) Recv() (Event[T], error) {
	select {
	case <-s.done:
		return Event[T]{}, io.EOF
	default:
	}
	select {
	case e, ok := <-s.events:
		if !ok {
			s.mu.Lock()
			err := s.err
			s.mu.Unlock()
			if err != nil {
				return Event[T]{}, err
			}
			return Event[T]{}, io.EOF
		}
		return e, nil
	case <-s.done:
		return Event[T]{}, io.EOF
	}
}

// Close terminates the stream and releases its background goroutine.
func (s *PartialStream[T]) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func optionsFromConfig(cfg CompleterConfig) []Option {
	opts := []Option{WithMaxDepth(cfg.MaxDepth)}
	if cfg.NonConformingFloatPolicy == Accept {
		opts = append(opts, WithNonConformingFloats(cfg.PosInfToken, cfg.NegInfToken, cfg.NaNToken))
	}
	return opts
}

// SetLogLevel sets the minimum log level for the internally used logger.
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// DisableLogs disables the internally used logger.
func DisableLogs() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}
