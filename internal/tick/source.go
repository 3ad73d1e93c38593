// Package tick produces periodic tick events for the UI loop.
package tick

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the tick period used by the application.
const DefaultInterval = 250 * time.Millisecond

// Event is a single tick.
type Event struct {
	At  time.Time
	Seq uint64
}

// Source emits ticks at a fixed interval on a bounded channel. When the
// consumer falls behind, ticks are dropped rather than queued.
type Source struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	wg      sync.WaitGroup
	mu      sync.Mutex
	dropped uint64
}

// NewSourceContext starts a tick source that also stops when ctx is done. A
// non-positive interval uses DefaultInterval.
func NewSourceContext(parent context.Context, interval time.Duration) *Source {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(parent)
	s := &Source{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	s.wg.Add(1)
	go s.run()

	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s
}

// Events returns the tick channel. It is closed once the source stops.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Stop cancels the source. It is safe to call more than once.
func (s *Source) Stop() {
	s.cancel()
}

// Wait blocks until the producer goroutine has exited and the events channel
// is closed.
func (s *Source) Wait() {
	s.wg.Wait()
}

// Dropped reports how many ticks were discarded because the channel was full.
func (s *Source) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Source) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			select {
			case s.events <- Event{At: now, Seq: seq}:
			default:
				s.mu.Lock()
				s.dropped++
				s.mu.Unlock()
			}
		}
	}
}
