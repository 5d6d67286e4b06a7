package contactsmanager

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FollowContact creates a follow edge toward the given organization user.
func (c *Client) FollowContact(ctx context.Context, followedID string) (*FollowRelationship, error) {
	req := struct {
		FollowedID string `json:"followed_id"`
	}{FollowedID: followedID}

	var res FollowRelationship
	if err := c.do(ctx, http.MethodPost, "/v1/social/follow", nil, req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

// UnfollowContact removes the follow edge toward the given organization user.
func (c *Client) UnfollowContact(ctx context.Context, followedID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/social/follow/"+url.PathEscape(followedID), nil, nil, nil, true)
}

// IsFollowingContact reports whether the registered user follows the target.
func (c *Client) IsFollowingContact(ctx context.Context, followedID string) (bool, error) {
	var res struct {
		Following bool `json:"following"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/social/follow/"+url.PathEscape(followedID), nil, nil, &res, true); err != nil {
		return false, err
	}
	return res.Following, nil
}

// Followers returns one page of the user's followers.
func (c *Client) Followers(ctx context.Context, page int) (*FollowPage, error) {
	return c.followPage(ctx, "/v1/social/followers", page)
}

// Following returns one page of contacts the user follows.
func (c *Client) Following(ctx context.Context, page int) (*FollowPage, error) {
	return c.followPage(ctx, "/v1/social/following", page)
}

func (c *Client) followPage(ctx context.Context, path string, page int) (*FollowPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var res FollowPage
	if err := c.do(ctx, http.MethodGet, path, q, nil, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

// Feed returns the follow-graph feed: events from contacts the user follows.
func (c *Client) Feed(ctx context.Context, page int) (*EventPage, error) {
	return c.eventPage(ctx, "/v1/social/feed", page)
}

// ForYouFeed returns the relevance-ranked feed.
func (c *Client) ForYouFeed(ctx context.Context, page int) (*EventPage, error) {
	return c.eventPage(ctx, "/v1/social/feed/for-you", page)
}

// ContactEvents returns events created by the registered user.
func (c *Client) ContactEvents(ctx context.Context, page int) (*EventPage, error) {
	return c.eventPage(ctx, "/v1/social/events", page)
}

func (c *Client) eventPage(ctx context.Context, path string, page int) (*EventPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var res EventPage
	if err := c.do(ctx, http.MethodGet, path, q, nil, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateEvent publishes a new social event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*SocialEvent, error) {
	var res SocialEvent
	if err := c.do(ctx, http.MethodPost, "/v1/social/events", nil, req, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}
