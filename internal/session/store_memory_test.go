package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store   *InMemoryStore
	changes []Change
}

func (s *MemoryStoreSuite) SetupTest() {
	notifier := NewNotifier()
	s.changes = nil
	notifier.Subscribe(func(c Change) { s.changes = append(s.changes, c) })
	s.store = NewInMemoryStore(notifier)
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestGetAbsentWhenNeverWritten() {
	sess, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Nil(sess, "absent session reads back as nil, not zero values")
}

func (s *MemoryStoreSuite) TestWriteRoundTrip() {
	userID := uuid.NewString()
	in := Session{
		UserID:       userID,
		ContactValue: "a@b.com",
		ContactType:  ContactTypeEmail,
		Profile:      &contactsmanager.UserInfo{UserID: userID, Email: "a@b.com"},
	}

	s.Require().NoError(s.store.Write(context.Background(), in))

	out, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Equal(in, *out)

	s.Require().Len(s.changes, 1)
	s.True(s.changes[0].Registered)
	s.Equal(userID, s.changes[0].UserID)
}

func (s *MemoryStoreSuite) TestWriteRejectsIncompleteSession() {
	err := s.store.Write(context.Background(), Session{UserID: uuid.NewString()})
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)
	s.Empty(s.changes, "rejected writes must not notify")
}

func (s *MemoryStoreSuite) TestClearIsIdempotent() {
	s.Require().NoError(s.store.Write(context.Background(), Session{
		UserID:       uuid.NewString(),
		ContactValue: "+14155550123",
		ContactType:  ContactTypePhone,
	}))

	s.Require().NoError(s.store.Clear(context.Background()))
	sess, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Nil(sess)

	s.Require().NoError(s.store.Clear(context.Background()))
	sess, err = s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Nil(sess, "second clear observes the same absent state")

	s.Require().Len(s.changes, 3)
	s.False(s.changes[1].Registered)
	s.False(s.changes[2].Registered)
}

func (s *MemoryStoreSuite) TestGetReturnsCopy() {
	userID := uuid.NewString()
	s.Require().NoError(s.store.Write(context.Background(), Session{
		UserID:       userID,
		ContactValue: "a@b.com",
	}))

	first, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	first.ContactValue = "mutated@b.com"

	second, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Equal("a@b.com", second.ContactValue)
}
