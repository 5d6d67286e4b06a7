package contactsmanager

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchContacts runs a full-text search over the synced contact store.
func (c *Client) SearchContacts(ctx context.Context, query string, limit int) ([]Contact, error) {
	q := url.Values{"query": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var res struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/contacts/search", q, nil, &res, true); err != nil {
		return nil, err
	}
	return res.Contacts, nil
}

// ContactsToInvite returns contacts scored by invite-worthiness.
func (c *Client) ContactsToInvite(ctx context.Context, limit int) ([]Recommendation, error) {
	return c.recommendations(ctx, "invite", limit)
}

// ContactsUsingApp returns contacts already registered with the service.
func (c *Client) ContactsUsingApp(ctx context.Context, limit int) ([]Recommendation, error) {
	return c.recommendations(ctx, "app-users", limit)
}

// ContactsNearby returns contacts scored by proximity.
func (c *Client) ContactsNearby(ctx context.Context, limit int) ([]Recommendation, error) {
	return c.recommendations(ctx, "nearby", limit)
}

func (c *Client) recommendations(ctx context.Context, kind string, limit int) ([]Recommendation, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var res struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/contacts/recommendations/"+kind, q, nil, &res, true); err != nil {
		return nil, err
	}
	return res.Recommendations, nil
}

// CreateContacts writes one batch of contacts to the remote contact store.
// Chunking into acceptable batch sizes is the caller's responsibility.
func (c *Client) CreateContacts(ctx context.Context, batch []NewContact) ([]Contact, error) {
	req := struct {
		Contacts []NewContact `json:"contacts"`
	}{Contacts: batch}

	var res struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/contacts/batch", nil, req, &res, true); err != nil {
		return nil, err
	}
	return res.Contacts, nil
}

// ListContactsByGivenName fetches contacts matching an exact given name,
// used by the seeder to find previously created test data.
func (c *Client) ListContactsByGivenName(ctx context.Context, givenName string) ([]Contact, error) {
	q := url.Values{"given_name": {givenName}}

	var res struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/contacts", q, nil, &res, true); err != nil {
		return nil, err
	}
	return res.Contacts, nil
}

// DeleteContacts removes one batch of contacts by id.
func (c *Client) DeleteContacts(ctx context.Context, ids []string) error {
	req := struct {
		ContactIDs []string `json:"contact_ids"`
	}{ContactIDs: ids}
	return c.do(ctx, http.MethodPost, "/v1/contacts/batch-delete", nil, req, nil, true)
}
