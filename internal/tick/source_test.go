package tick

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceEmitsIncreasingSequence(t *testing.T) {
	s := NewSourceContext(context.Background(), 5 * time.Millisecond)
	defer s.Stop()

	first := receive(t, s)
	second := receive(t, s)
	assert.Greater(t, second.Seq, first.Seq)
	assert.False(t, second.At.Before(first.At))
}

func TestSourceStopClosesChannel(t *testing.T) {
	s := NewSourceContext(context.Background(), time.Millisecond)
	s.Stop()
	s.Stop()
	s.Wait()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-s.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after Stop")
		}
	}
}

func TestSourceDropsWhenConsumerStalls(t *testing.T) {
	s := NewSourceContext(context.Background(), time.Millisecond)
	defer s.Stop()

	require.Eventually(t, func() bool { return s.Dropped() > 0 }, 2*time.Second, 5*time.Millisecond)
	assert.LessOrEqual(t, len(s.Events()), cap(s.Events()))
}

func TestSourceContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSourceContext(ctx, time.Millisecond)
	cancel()
	s.Wait()
}

func TestDefaultInterval(t *testing.T) {
	s := NewSourceContext(context.Background(), 0)
	defer s.Stop()
	assert.Equal(t, DefaultInterval, s.interval)
}

func receive(t *testing.T, s *Source) Event {
	t.Helper()
	select {
	case evt, ok := <-s.Events():
		require.True(t, ok, "events channel closed early")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
	}
	return Event{}
}
