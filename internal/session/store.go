package session

import (
	"context"
	"sync"
)

// Store persists the device-local session. It is a thin key-value wrapper:
// atomicity is whatever the backing store gives, no transaction layer on top.
// The Session Lifecycle Controller is the only writer; readers are
// unrestricted.
type Store interface {
	// Get returns the persisted session or nil when no registration exists.
	// Absent fields come back absent, never as zero-value defaults.
	Get(ctx context.Context) (*Session, error)
	// Write persists all session fields and notifies subscribers.
	Write(ctx context.Context, s Session) error
	// Clear removes every session field. Idempotent; also notifies.
	Clear(ctx context.Context) error
}

// Change describes one registration transition delivered to subscribers.
type Change struct {
	Registered bool
	UserID     string
}

// Notifier is an explicit ordered subscriber list for "registration changed"
// signals. Delivery order equals subscription order; callbacks run on the
// notifying goroutine, so subscribers must not block.
type Notifier struct {
	mu   sync.Mutex
	subs []func(Change)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe appends a callback. There is no unsubscribe; subscribers live as
// long as the process, matching the app lifecycle.
func (n *Notifier) Subscribe(fn func(Change)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Publish delivers the change to every subscriber in subscription order.
func (n *Notifier) Publish(c Change) {
	n.mu.Lock()
	subs := append([]func(Change){}, n.subs...)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}
