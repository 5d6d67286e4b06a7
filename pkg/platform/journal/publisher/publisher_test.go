package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactsdemo/pkg/platform/journal"
	"contactsdemo/pkg/platform/journal/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), journal.Event{
		UserID: "user-1",
		Action: journal.ActionUserRegistered,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, journal.ActionUserRegistered, events[0].Action)
	assert.NotZero(t, events[0].ID, "missing id is filled on emit")
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestPublisher_AsyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))
	defer pub.Close()

	err := pub.Emit(context.Background(), journal.Event{
		UserID: "user-1",
		Action: journal.ActionRegistrationCleared,
	})
	require.NoError(t, err)

	// Wait for async processing
	time.Sleep(100 * time.Millisecond)

	events, err := pub.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, journal.ActionRegistrationCleared, events[0].Action)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for range 10 {
		err := pub.Emit(context.Background(), journal.Event{
			UserID: "user-1",
			Action: journal.ActionUserRegistered,
		})
		require.NoError(t, err)
	}

	// Close should drain all events
	pub.Close()

	events, err := store.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_CloseIsIdempotent(t *testing.T) {
	pub := NewPublisher(memory.NewInMemoryStore(), WithAsyncBuffer(1))
	pub.Close()
	pub.Close()
}
