package access

import (
	"context"

	"contactsdemo/pkg/contactsmanager"
)

// Client is the slice of the ContactsManager client the bridge depends on.
type Client interface {
	AccessStatus(ctx context.Context) (contactsmanager.AccessStatus, error)
	RequestAccess(ctx context.Context) (bool, error)
}

// Bridge republishes the external permission state to the rest of the app.
// It holds no state of its own: every call re-queries the collaborator so
// permission changes made outside the app are never masked by a stale cache.
type Bridge struct {
	client Client
}

func NewBridge(client Client) *Bridge {
	return &Bridge{client: client}
}

// Status returns a live snapshot of the contact-store permission.
func (b *Bridge) Status(ctx context.Context) (contactsmanager.AccessStatus, error) {
	return b.client.AccessStatus(ctx)
}

// Request prompts for access and reports whether it is now authorized.
// Blocks until the user responds, or resolves immediately if already decided.
func (b *Bridge) Request(ctx context.Context) (bool, error) {
	return b.client.RequestAccess(ctx)
}
