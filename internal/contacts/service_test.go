package contacts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactsdemo/pkg/contactsmanager"
)

type fakeRecsClient struct {
	invite   []contactsmanager.Recommendation
	appUsers []contactsmanager.Recommendation
	nearby   []contactsmanager.Recommendation

	nearbyErr error
}

func (f *fakeRecsClient) SearchContacts(context.Context, string, int) ([]contactsmanager.Contact, error) {
	return nil, nil
}

func (f *fakeRecsClient) ContactsToInvite(context.Context, int) ([]contactsmanager.Recommendation, error) {
	return f.invite, nil
}

func (f *fakeRecsClient) ContactsUsingApp(context.Context, int) ([]contactsmanager.Recommendation, error) {
	return f.appUsers, nil
}

func (f *fakeRecsClient) ContactsNearby(context.Context, int) ([]contactsmanager.Recommendation, error) {
	return f.nearby, f.nearbyErr
}

func rec(id string, score float64) contactsmanager.Recommendation {
	return contactsmanager.Recommendation{Contact: contactsmanager.Contact{ID: id}, Score: score}
}

func TestAllFetchesEveryFeed(t *testing.T) {
	client := &fakeRecsClient{
		invite:   []contactsmanager.Recommendation{rec("a", 0.9)},
		appUsers: []contactsmanager.Recommendation{rec("b", 0.8), rec("c", 0.7)},
		nearby:   []contactsmanager.Recommendation{rec("d", 0.6)},
	}

	recs, err := NewService(client).All(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, client.invite, recs.Invite)
	assert.Equal(t, client.appUsers, recs.AppUsers)
	assert.Equal(t, client.nearby, recs.Nearby)
}

func TestAllFailsWhenAnyFeedFails(t *testing.T) {
	feedErr := errors.New("nearby unavailable")
	client := &fakeRecsClient{
		invite:    []contactsmanager.Recommendation{rec("a", 0.9)},
		nearbyErr: feedErr,
	}

	recs, err := NewService(client).All(context.Background(), 10)
	require.ErrorIs(t, err, feedErr)
	assert.Nil(t, recs)
}
