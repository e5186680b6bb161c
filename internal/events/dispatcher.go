package events

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

// Sink receives every event the dispatcher accepts.
type Sink interface {
	Name() string
	Handle(ctx context.Context, ev domain.Event) error
}

// Dispatcher fans booking events out to sinks on a background worker.
// Publish never blocks: when the queue is full the event is dropped.
type Dispatcher struct {
	sinks   []Sink
	queue   chan domain.Event
	log     zerolog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log zerolog.Logger, buffer int, sinks ...Sink) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}
	d := &Dispatcher{
		sinks:   sinks,
		queue:   make(chan domain.Event, buffer),
		log:     log,
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			err := s.Handle(ctx, ev)
			cancel()
			if err != nil {
				metrics.IncEventDropped(s.Name())
				d.log.Error().
					Err(err).
					Str("sink", s.Name()).
					Str("event_id", ev.ID).
					Str("event_type", string(ev.Type)).
					Uint("booking_id", ev.BookingID).
					Msg("event delivery failed")
			}
		}
	}
}

func (d *Dispatcher) Publish(ev domain.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.IncEventDropped("queue")
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.IncEventDropped("queue")
		d.log.Warn().
			Str("event_id", ev.ID).
			Str("event_type", string(ev.Type)).
			Msg("event queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be handled,
// or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ domain.EventPublisher = (*Dispatcher)(nil)
