package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type recordingSink struct {
	name string
	err  error

	mu  sync.Mutex
	got []domain.Event
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Handle(_ context.Context, ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, ev)
	return s.err
}

func (s *recordingSink) events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.got...)
}

func TestDispatcherDeliversToEverySink(t *testing.T) {
	failing := &recordingSink{name: "failing", err: errors.New("boom")}
	ok := &recordingSink{name: "ok"}
	d := NewDispatcher(zerolog.Nop(), 10, failing, ok)

	d.Publish(domain.Event{ID: "a", Type: domain.EventBookingCreated, BookingID: 1})
	d.Publish(domain.Event{ID: "b", Type: domain.EventBookingCancelled, BookingID: 1})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Len(t, failing.events(), 2)
	got := ok.events()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestDispatcherPublishAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{name: "ok"}
	d := NewDispatcher(zerolog.Nop(), 1, sink)
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Publish(domain.Event{ID: "late"})
	})
	assert.Empty(t, sink.events())
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Name() string { return "blocking" }

func (s *blockingSink) Handle(ctx context.Context, _ domain.Event) error {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}

func TestDispatcherPublishNeverBlocks(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	d := NewDispatcher(zerolog.Nop(), 1, sink)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			d.Publish(domain.Event{ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}

	close(sink.release)
	require.NoError(t, d.Close(context.Background()))
}
