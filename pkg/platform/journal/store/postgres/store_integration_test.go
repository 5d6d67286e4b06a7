//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"contactsdemo/pkg/platform/journal"
	"contactsdemo/pkg/platform/journal/store/postgres"
	"contactsdemo/pkg/testutil/containers"
)

func TestPostgresJournalStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pg := containers.NewPostgresContainer(t)
	store := postgres.New(pg.DB)

	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx), "schema setup is idempotent")

	userID := uuid.NewString()
	require.NoError(t, store.Append(ctx, journal.Event{
		UserID: userID,
		Action: journal.ActionUserRegistered,
		Detail: "contact_type=email",
	}))
	require.NoError(t, store.Append(ctx, journal.Event{
		UserID: userID,
		Action: journal.ActionRegistrationCleared,
	}))

	events, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, journal.ActionUserRegistered, events[0].Action)
	require.Equal(t, journal.ActionRegistrationCleared, events[1].Action)

	other, err := store.ListByUser(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Empty(t, other)
}
