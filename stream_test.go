package partialjson_test

import (
	"context"
	"io"
	"testing"

	"github.com/revrost/partialjson"
	"github.com/stretchr/testify/require"
)

type sliceByteSource struct {
	data []byte
	pos  int
}

func (s *sliceByteSource) NextByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func TestPartialStreamYieldsGrowingValuesThenCompletes(t *testing.T) {
	src := &sliceByteSource{data: []byte(`{"name": "Alice", "age": 30}`)}
	stream := partialjson.NewPartialStream[person](context.Background(), src, decodePerson, partialjson.DefaultConfig())
	defer stream.Close()

	var events []partialjson.Event[person]
	for {
		e, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, e)
	}

	require.NotEmpty(t, events)

	last := events[len(events)-1]
	require.Truef(t, last.IsComplete, "expected the final event to be complete, got %#v", last)
	require.Equal(t, person{Name: "Alice", Age: 30}, last.Value)

	for i, e := range events[:len(events)-1] {
		require.Falsef(t, e.IsComplete, "event %d: expected only the last event to be complete, got %#v", i, e)
	}
}

func TestPartialStreamClosePreventsFurtherRecv(t *testing.T) {
	src := &sliceByteSource{data: []byte(`{"name": "Alice", "age": 30}`)}
	stream := partialjson.NewPartialStream[person](context.Background(), src, decodePerson, partialjson.DefaultConfig())
	stream.Close()

	_, err := stream.Recv()
	require.ErrorIs(t, err, io.EOF)
}

func TestPartialStreamContextCancellationStopsStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &sliceByteSource{data: []byte(`{"name": "Alice", "age": 30}`)}
	stream := partialjson.NewPartialStream[person](ctx, src, decodePerson, partialjson.DefaultConfig())
	defer stream.Close()

	cancel()

	for {
		_, err := stream.Recv()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return
		}
	}
}
