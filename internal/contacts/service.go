package contacts

import (
	"context"

	"golang.org/x/sync/errgroup"

	"contactsdemo/pkg/contactsmanager"
)

// RecommendationsClient is the slice of the ContactsManager client the
// recommendation service uses.
type RecommendationsClient interface {
	SearchContacts(ctx context.Context, query string, limit int) ([]contactsmanager.Contact, error)
	ContactsToInvite(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
	ContactsUsingApp(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
	ContactsNearby(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error)
}

// Recommendations bundles the three recommendation feeds.
type Recommendations struct {
	Invite   []contactsmanager.Recommendation `json:"invite"`
	AppUsers []contactsmanager.Recommendation `json:"app_users"`
	Nearby   []contactsmanager.Recommendation `json:"nearby"`
}

// Service exposes contact search and recommendations.
type Service struct {
	client RecommendationsClient
}

func NewService(client RecommendationsClient) *Service {
	return &Service{client: client}
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]contactsmanager.Contact, error) {
	return s.client.SearchContacts(ctx, query, limit)
}

func (s *Service) Invite(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error) {
	return s.client.ContactsToInvite(ctx, limit)
}

func (s *Service) AppUsers(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error) {
	return s.client.ContactsUsingApp(ctx, limit)
}

func (s *Service) Nearby(ctx context.Context, limit int) ([]contactsmanager.Recommendation, error) {
	return s.client.ContactsNearby(ctx, limit)
}

// All fetches the three recommendation feeds concurrently. The first
// failure cancels the remaining fetches.
func (s *Service) All(ctx context.Context, limit int) (*Recommendations, error) {
	var recs Recommendations

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.client.ContactsToInvite(ctx, limit)
		recs.Invite = out
		return err
	})
	g.Go(func() error {
		out, err := s.client.ContactsUsingApp(ctx, limit)
		recs.AppUsers = out
		return err
	})
	g.Go(func() error {
		out, err := s.client.ContactsNearby(ctx, limit)
		recs.Nearby = out
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &recs, nil
}
