package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contactsdemo/pkg/platform/journal"
)

// Store persists journal events in Postgres for deployments that want the
// registration history to outlive the process.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS journal_events (
    id         UUID PRIMARY KEY,
    user_id    TEXT NOT NULL DEFAULT '',
    action     TEXT NOT NULL,
    detail     TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS journal_events_user_idx ON journal_events (user_id, created_at);
`

// EnsureSchema creates the journal table when missing. Called once at startup;
// the demo ships without a migration tool.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure journal schema: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, event journal.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	const query = `
		INSERT INTO journal_events (id, user_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query,
		event.ID, event.UserID, string(event.Action), event.Detail, event.Timestamp,
	); err != nil {
		return fmt.Errorf("insert journal event: %w", err)
	}
	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]journal.Event, error) {
	const query = `
		SELECT id, user_id, action, detail, created_at
		FROM journal_events
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal events: %w", err)
	}
	defer rows.Close()

	var events []journal.Event
	for rows.Next() {
		var event journal.Event
		var action string
		if err := rows.Scan(&event.ID, &event.UserID, &action, &event.Detail, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan journal event: %w", err)
		}
		event.Action = journal.Action(action)
		events = append(events, event)
	}
	return events, rows.Err()
}
