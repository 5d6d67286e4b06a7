package social

import (
	"context"
	"strings"

	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
)

// FeedKind selects which event feed to read.
type FeedKind string

const (
	FeedFollowed FeedKind = "followed"
	FeedForYou   FeedKind = "for-you"
	FeedOwn      FeedKind = "own"
)

// ParseFeedKind maps a query-string value onto a feed kind. An empty value
// defaults to the followed feed.
func ParseFeedKind(raw string) (FeedKind, error) {
	switch FeedKind(strings.ToLower(raw)) {
	case FeedFollowed, "":
		return FeedFollowed, nil
	case FeedForYou:
		return FeedForYou, nil
	case FeedOwn:
		return FeedOwn, nil
	}
	return "", domainerrors.New(domainerrors.CodeInvalidInput, "unknown feed kind: "+raw)
}

// Client is the slice of the ContactsManager client the social service uses.
type Client interface {
	FollowContact(ctx context.Context, followedID string) (*contactsmanager.FollowRelationship, error)
	UnfollowContact(ctx context.Context, followedID string) error
	IsFollowingContact(ctx context.Context, followedID string) (bool, error)
	Followers(ctx context.Context, page int) (*contactsmanager.FollowPage, error)
	Following(ctx context.Context, page int) (*contactsmanager.FollowPage, error)
	Feed(ctx context.Context, page int) (*contactsmanager.EventPage, error)
	ForYouFeed(ctx context.Context, page int) (*contactsmanager.EventPage, error)
	ContactEvents(ctx context.Context, page int) (*contactsmanager.EventPage, error)
	CreateEvent(ctx context.Context, req contactsmanager.CreateEventRequest) (*contactsmanager.SocialEvent, error)
}

// Service fronts the social surface of the ContactsManager service. All graph
// state lives upstream; nothing is cached here.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Follow(ctx context.Context, followedID string) (*contactsmanager.FollowRelationship, error) {
	if followedID == "" {
		return nil, domainerrors.New(domainerrors.CodeInvalidInput, "contact id is required")
	}
	return s.client.FollowContact(ctx, followedID)
}

func (s *Service) Unfollow(ctx context.Context, followedID string) error {
	if followedID == "" {
		return domainerrors.New(domainerrors.CodeInvalidInput, "contact id is required")
	}
	return s.client.UnfollowContact(ctx, followedID)
}

func (s *Service) IsFollowing(ctx context.Context, followedID string) (bool, error) {
	if followedID == "" {
		return false, domainerrors.New(domainerrors.CodeInvalidInput, "contact id is required")
	}
	return s.client.IsFollowingContact(ctx, followedID)
}

func (s *Service) Followers(ctx context.Context, page int) (*contactsmanager.FollowPage, error) {
	return s.client.Followers(ctx, page)
}

func (s *Service) Following(ctx context.Context, page int) (*contactsmanager.FollowPage, error) {
	return s.client.Following(ctx, page)
}

func (s *Service) Events(ctx context.Context, kind FeedKind, page int) (*contactsmanager.EventPage, error) {
	switch kind {
	case FeedForYou:
		return s.client.ForYouFeed(ctx, page)
	case FeedOwn:
		return s.client.ContactEvents(ctx, page)
	default:
		return s.client.Feed(ctx, page)
	}
}

func (s *Service) CreateEvent(ctx context.Context, req contactsmanager.CreateEventRequest) (*contactsmanager.SocialEvent, error) {
	if req.EventType == "" || req.Title == "" {
		return nil, domainerrors.New(domainerrors.CodeInvalidInput, "event_type and title are required")
	}
	return s.client.CreateEvent(ctx, req)
}
