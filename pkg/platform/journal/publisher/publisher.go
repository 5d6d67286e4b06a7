package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"contactsdemo/pkg/platform/journal"
)

// Publisher fans journal events into a store, either synchronously or through
// a bounded buffer drained by a background goroutine. When the buffer is full
// events are dropped rather than blocking the registration path.
type Publisher struct {
	store journal.Store

	inbox chan journal.Event
	wg    sync.WaitGroup
	once  sync.Once
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to asynchronous mode with the given
// buffer capacity.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.inbox = make(chan journal.Event, size)
	}
}

func NewPublisher(store journal.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit records one event. Missing ID and Timestamp are filled in here so call
// sites stay terse.
func (p *Publisher) Emit(ctx context.Context, event journal.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
	default:
		// Buffer full: journal writes must never stall registration.
	}
	return nil
}

// List returns the journal for one user.
func (p *Publisher) List(ctx context.Context, userID string) ([]journal.Event, error) {
	return p.store.ListByUser(ctx, userID)
}

// Close stops the background drain, flushing anything still buffered.
func (p *Publisher) Close() {
	p.once.Do(func() {
		if p.inbox != nil {
			close(p.inbox)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.inbox {
		// Background context: the emitting request may be long gone.
		_ = p.store.Append(context.Background(), event)
	}
}
