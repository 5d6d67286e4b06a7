package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactsdemo/pkg/contactsmanager"
)

type stubClient struct {
	status      contactsmanager.AccessStatus
	statusCalls int
	granted     bool
}

func (s *stubClient) AccessStatus(context.Context) (contactsmanager.AccessStatus, error) {
	s.statusCalls++
	return s.status, nil
}

func (s *stubClient) RequestAccess(context.Context) (bool, error) {
	return s.granted, nil
}

func TestStatusReQueriesEveryCall(t *testing.T) {
	client := &stubClient{status: contactsmanager.AccessNotDetermined}
	bridge := NewBridge(client)

	status, err := bridge.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contactsmanager.AccessNotDetermined, status)

	// A change outside the app shows up on the next read.
	client.status = contactsmanager.AccessAuthorized
	status, err = bridge.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contactsmanager.AccessAuthorized, status)
	assert.Equal(t, 2, client.statusCalls)
}

func TestRequestReportsGrant(t *testing.T) {
	bridge := NewBridge(&stubClient{granted: true})

	granted, err := bridge.Request(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)
}
