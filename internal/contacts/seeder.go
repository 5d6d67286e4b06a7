package contacts

import (
	"context"
	"fmt"
	"log/slog"

	"contactsdemo/internal/platform/metrics"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/platform/journal"
)

// BatchSize is the contact-store write limit per request.
const BatchSize = 50

// seedGivenName marks seeded test contacts so Purge can find them again.
const seedGivenName = "Contact"

// StoreClient is the slice of the ContactsManager client the seeder uses.
type StoreClient interface {
	CreateContacts(ctx context.Context, batch []contactsmanager.NewContact) ([]contactsmanager.Contact, error)
	ListContactsByGivenName(ctx context.Context, givenName string) ([]contactsmanager.Contact, error)
	DeleteContacts(ctx context.Context, ids []string) error
}

// JournalPublisher records seed/purge runs.
type JournalPublisher interface {
	Emit(ctx context.Context, event journal.Event) error
}

// Seeder creates and deletes bulk test contacts. Batches are issued
// sequentially and each one commits independently: a mid-sequence failure
// leaves earlier batches in place. Fine for test data, never for production
// integrity.
type Seeder struct {
	client  StoreClient
	journal JournalPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSeeder(client StoreClient, journalPub JournalPublisher, m *metrics.Metrics, logger *slog.Logger) *Seeder {
	return &Seeder{client: client, journal: journalPub, metrics: m, logger: logger}
}

// Create writes n sequentially numbered test contacts in batches of
// BatchSize. Returns how many were created, which on error counts the
// batches already committed.
func (s *Seeder) Create(ctx context.Context, n int) (int, error) {
	created := 0
	for start := 0; start < n; start += BatchSize {
		end := min(start+BatchSize, n)

		batch := make([]contactsmanager.NewContact, 0, end-start)
		for i := start; i < end; i++ {
			number := i + 1
			batch = append(batch, contactsmanager.NewContact{
				GivenName:  seedGivenName,
				FamilyName: fmt.Sprintf("%d", number),
				Phones:     []string{fmt.Sprintf("+1%09d", number)},
				Emails:     []string{fmt.Sprintf("contact%d@example.com", number)},
			})
		}

		if _, err := s.client.CreateContacts(ctx, batch); err != nil {
			return created, fmt.Errorf("create batch starting at %d: %w", start, err)
		}
		created += len(batch)
	}

	if s.metrics != nil {
		s.metrics.ContactsSeededTotal.Add(float64(created))
	}
	_ = s.journal.Emit(ctx, journal.Event{
		Action: journal.ActionContactsSeeded,
		Detail: fmt.Sprintf("count=%d", created),
	})
	s.logger.InfoContext(ctx, "seeded test contacts", "count", created)
	return created, nil
}

// Purge deletes every contact previously created by Create, matched by the
// seed given name, in batches of BatchSize. Returns how many were deleted.
func (s *Seeder) Purge(ctx context.Context) (int, error) {
	found, err := s.client.ListContactsByGivenName(ctx, seedGivenName)
	if err != nil {
		return 0, fmt.Errorf("list seeded contacts: %w", err)
	}

	ids := make([]string, 0, len(found))
	for _, c := range found {
		// Double-check the naming convention before deleting anything.
		if c.GivenName == seedGivenName {
			ids = append(ids, c.ID)
		}
	}

	deleted := 0
	for start := 0; start < len(ids); start += BatchSize {
		end := min(start+BatchSize, len(ids))
		if err := s.client.DeleteContacts(ctx, ids[start:end]); err != nil {
			return deleted, fmt.Errorf("delete batch starting at %d: %w", start, err)
		}
		deleted += end - start
	}

	_ = s.journal.Emit(ctx, journal.Event{
		Action: journal.ActionContactsPurged,
		Detail: fmt.Sprintf("count=%d", deleted),
	})
	s.logger.InfoContext(ctx, "purged seeded contacts", "count", deleted)
	return deleted, nil
}
