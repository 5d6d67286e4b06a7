package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contactsdemo/internal/session"
	"contactsdemo/internal/session/service/mocks"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
	"contactsdemo/pkg/platform/journal"
	"contactsdemo/pkg/platform/journal/publisher"
	journalmemory "contactsdemo/pkg/platform/journal/store/memory"
)

//go:generate mockgen -source=service.go -destination=mocks/service-mocks.go -package=mocks

const testAPIKey = "test-api-key"

type ServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *session.InMemoryStore
	bridge       *mocks.MockAccessBridge
	client       *mocks.MockInitializer
	journalStore *journalmemory.InMemoryStore
	service      *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = session.NewInMemoryStore(session.NewNotifier())
	s.bridge = mocks.NewMockAccessBridge(s.ctrl)
	s.client = mocks.NewMockInitializer(s.ctrl)
	s.journalStore = journalmemory.NewInMemoryStore()

	pub := publisher.NewPublisher(s.journalStore)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.store, s.bridge, s.client, pub, nil, logger, testAPIKey)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) initResult() *contactsmanager.InitResult {
	return &contactsmanager.InitResult{
		SessionToken: "token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func (s *ServiceSuite) TestRegisterEmailSuccess() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)

	var sentInfo contactsmanager.UserInfo
	s.client.EXPECT().
		Initialize(gomock.Any(), testAPIKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, info contactsmanager.UserInfo) (*contactsmanager.InitResult, error) {
			sentInfo = info
			return s.initResult(), nil
		})

	sess, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().NoError(err)
	s.Require().NotNil(sess)

	_, err = uuid.Parse(sess.UserID)
	s.Require().NoError(err, "user id must be a valid UUID")
	s.Equal("a@b.com", sess.ContactValue)
	s.Equal(session.ContactTypeEmail, sess.ContactType)

	s.Equal(sess.UserID, sentInfo.UserID, "profile sent to the service carries the generated id")
	s.Equal("a@b.com", sentInfo.Email)
	s.Empty(sentInfo.Phone)

	persisted, err := s.store.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	s.Equal(*sess, *persisted)

	registered, err := s.service.IsRegistered(ctx)
	s.Require().NoError(err)
	s.True(registered)

	events, err := s.journalStore.ListByUser(ctx, sess.UserID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(journal.ActionUserRegistered, events[0].Action)
}

func (s *ServiceSuite) TestRegisterPhoneSuccess() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)

	var sentInfo contactsmanager.UserInfo
	s.client.EXPECT().
		Initialize(gomock.Any(), testAPIKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, info contactsmanager.UserInfo) (*contactsmanager.InitResult, error) {
			sentInfo = info
			return s.initResult(), nil
		})

	sess, err := s.service.Register(ctx, "+14155550123", session.ContactTypePhone)
	s.Require().NoError(err)
	s.Equal("+14155550123", sentInfo.Phone)
	s.Empty(sentInfo.Email)
	s.Equal(session.ContactTypePhone, sess.ContactType)
}

func (s *ServiceSuite) TestRegisterValidationFailureLeavesStoreUntouched() {
	ctx := context.Background()

	// A prior registration must survive a failed attempt.
	prior := session.Session{UserID: uuid.NewString(), ContactValue: "old@b.com"}
	s.Require().NoError(s.store.Write(ctx, prior))

	_, err := s.service.Register(ctx, "not-an-email", session.ContactTypeEmail)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeInvalidInput))

	persisted, err := s.store.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	s.Equal(prior.UserID, persisted.UserID, "no partial write on validation failure")
}

func (s *ServiceSuite) TestRegisterRequiresAuthorizedAccess() {
	ctx := context.Background()

	for _, status := range []contactsmanager.AccessStatus{
		contactsmanager.AccessNotDetermined,
		contactsmanager.AccessDenied,
		contactsmanager.AccessRestricted,
	} {
		s.Run(string(status), func() {
			s.bridge.EXPECT().Status(gomock.Any()).Return(status, nil)

			_, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
			s.Require().Error(err)
			s.True(domainerrors.HasCode(err, domainerrors.CodeAccessDenied))

			persisted, err := s.store.Get(ctx)
			s.Require().NoError(err)
			s.Nil(persisted)
		})
	}
}

func (s *ServiceSuite) TestRegisterRollsBackOnInitFailure() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)
	s.client.EXPECT().
		Initialize(gomock.Any(), testAPIKey, gomock.Any()).
		Return(nil, errors.New("upstream exploded"))

	_, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeInitFailed))

	persisted, getErr := s.store.Get(ctx)
	s.Require().NoError(getErr)
	s.Nil(persisted, "store returns to absent state after rollback")

	registered, regErr := s.service.IsRegistered(ctx)
	s.Require().NoError(regErr)
	s.False(registered)
}

func (s *ServiceSuite) TestRegisterInvalidAPIKeyHint() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)
	s.client.EXPECT().
		Initialize(gomock.Any(), testAPIKey, gomock.Any()).
		Return(nil, &contactsmanager.APIError{
			Status:  401,
			Code:    "invalid_api_key",
			Message: "invalid key",
		})

	_, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().Error(err)
	s.True(domainerrors.HasCode(err, domainerrors.CodeInitFailed))
	s.Contains(err.Error(), "API key", "error carries the key-specific hint")

	persisted, getErr := s.store.Get(ctx)
	s.Require().NoError(getErr)
	s.Nil(persisted)

	var rollbacks int
	all, listErr := s.journalStore.ListAll(ctx)
	s.Require().NoError(listErr)
	for _, ev := range all {
		if ev.Action == journal.ActionRegistrationRolledBack {
			rollbacks++
		}
	}
	s.Equal(1, rollbacks)
}

func (s *ServiceSuite) TestConcurrentRegisterRejected() {
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)
	s.client.EXPECT().
		Initialize(gomock.Any(), testAPIKey, gomock.Any()).
		DoAndReturn(func(context.Context, string, contactsmanager.UserInfo) (*contactsmanager.InitResult, error) {
			close(entered)
			<-release
			return s.initResult(), nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
		done <- err
	}()

	<-entered
	_, err := s.service.Register(ctx, "b@c.com", session.ContactTypeEmail)
	s.Require().ErrorIs(err, ErrRegistrationInFlight)

	close(release)
	s.Require().NoError(<-done)
}

func (s *ServiceSuite) TestClearIsIdempotentAndResetsClient() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil)
	s.client.EXPECT().Initialize(gomock.Any(), testAPIKey, gomock.Any()).Return(s.initResult(), nil)
	s.client.EXPECT().Reset().Times(2)

	sess, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Clear(ctx))
	s.Require().NoError(s.service.Clear(ctx))

	current, err := s.service.Current(ctx)
	s.Require().NoError(err)
	s.Nil(current)

	events, err := s.journalStore.ListByUser(ctx, sess.UserID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(journal.ActionRegistrationCleared, events[1].Action)
}

func (s *ServiceSuite) TestFreshRegistrationGeneratesNewUserID() {
	ctx := context.Background()
	s.bridge.EXPECT().Status(gomock.Any()).Return(contactsmanager.AccessAuthorized, nil).Times(2)
	s.client.EXPECT().Initialize(gomock.Any(), testAPIKey, gomock.Any()).Return(s.initResult(), nil).Times(2)
	s.client.EXPECT().Reset()

	first, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Clear(ctx))

	second, err := s.service.Register(ctx, "a@b.com", session.ContactTypeEmail)
	s.Require().NoError(err)
	s.NotEqual(first.UserID, second.UserID)
}
