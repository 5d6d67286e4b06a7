package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action names a registration lifecycle transition worth keeping a record of.
type Action string

const (
	ActionUserRegistered         Action = "user_registered"
	ActionRegistrationRolledBack Action = "registration_rolled_back"
	ActionRegistrationCleared    Action = "registration_cleared"
	ActionAccessRequested        Action = "access_requested"
	ActionContactsSeeded         Action = "contacts_seeded"
	ActionContactsPurged         Action = "contacts_purged"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	UserID    string
	Action    Action
	Detail    string
}

// Store persists journal events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
}
