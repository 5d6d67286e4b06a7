package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"contactsdemo/internal/platform/metrics"
	"contactsdemo/internal/session"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
	"contactsdemo/pkg/platform/journal"
)

// Initializer is the slice of the ContactsManager client the controller
// needs: establish a session, and drop it again on clear.
type Initializer interface {
	Initialize(ctx context.Context, apiKey string, info contactsmanager.UserInfo) (*contactsmanager.InitResult, error)
	Reset()
}

// AccessBridge answers the permission precondition.
type AccessBridge interface {
	Status(ctx context.Context) (contactsmanager.AccessStatus, error)
}

// JournalPublisher records lifecycle transitions.
type JournalPublisher interface {
	Emit(ctx context.Context, event journal.Event) error
}

// ErrRegistrationInFlight rejects a second Register while one is running.
// Mutual exclusion lives here, not in UI affordances.
var ErrRegistrationInFlight = domainerrors.New(domainerrors.CodeConflict, "a registration is already in progress")

// Service is the session lifecycle controller. It turns a contact value into
// a durable, service-acknowledged registration, or leaves the system exactly
// as it was: a failed initialization rolls the local write back.
//
// Single writer: nothing else mutates the session store.
type Service struct {
	store   session.Store
	bridge  AccessBridge
	client  Initializer
	journal JournalPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	apiKey  string

	regMu sync.Mutex
}

func New(
	store session.Store,
	bridge AccessBridge,
	client Initializer,
	journalPub JournalPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	apiKey string,
) *Service {
	return &Service{
		store:   store,
		bridge:  bridge,
		client:  client,
		journal: journalPub,
		metrics: m,
		logger:  logger,
		apiKey:  apiKey,
	}
}

// Register runs the full sequence: validate, check access, generate an id,
// persist, initialize the remote service, and commit or roll back.
func (s *Service) Register(ctx context.Context, contactValue string, contactType session.ContactType) (*session.Session, error) {
	if !s.regMu.TryLock() {
		return nil, ErrRegistrationInFlight
	}
	defer s.regMu.Unlock()

	if err := session.ValidateContact(contactValue, contactType); err != nil {
		return nil, err
	}

	status, err := s.bridge.Status(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeUnavailable, "contacts access status unavailable", err)
	}
	if status != contactsmanager.AccessAuthorized {
		return nil, domainerrors.New(domainerrors.CodeAccessDenied, "contacts access not granted")
	}

	userID := uuid.NewString()
	info := contactsmanager.UserInfo{UserID: userID}
	switch contactType {
	case session.ContactTypeEmail:
		info.Email = contactValue
	case session.ContactTypePhone:
		info.Phone = contactValue
	}

	sess := session.Session{
		UserID:       userID,
		ContactValue: contactValue,
		ContactType:  contactType,
		Profile:      &info,
	}
	if err := s.store.Write(ctx, sess); err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeUnavailable, "persist session", err)
	}

	if _, err := s.client.Initialize(ctx, s.apiKey, info); err != nil {
		s.rollback(ctx, userID, err)
		if errors.Is(err, contactsmanager.ErrInvalidAPIKey) {
			return nil, domainerrors.Wrap(domainerrors.CodeInitFailed,
				"service rejected the API key: set CM_API_KEY or the config file entry", err)
		}
		return nil, domainerrors.Wrap(domainerrors.CodeInitFailed, "service initialization failed", err)
	}

	if s.metrics != nil {
		s.metrics.RegistrationsTotal.Inc()
	}
	_ = s.journal.Emit(ctx, journal.Event{
		UserID: userID,
		Action: journal.ActionUserRegistered,
		Detail: "contact_type=" + contactType.String(),
	})
	s.logger.InfoContext(ctx, "user registered",
		"user_id", userID,
		"contact_type", contactType.String(),
	)

	return &sess, nil
}

// rollback restores the pre-registration state after a failed initialization.
func (s *Service) rollback(ctx context.Context, userID string, cause error) {
	if err := s.store.Clear(ctx); err != nil {
		// The store now disagrees with the remote service; surface loudly,
		// the next Register overwrites it anyway.
		s.logger.ErrorContext(ctx, "registration rollback failed",
			"user_id", userID,
			"error", err.Error(),
		)
	}
	if s.metrics != nil {
		s.metrics.RollbacksTotal.Inc()
	}
	_ = s.journal.Emit(ctx, journal.Event{
		UserID: userID,
		Action: journal.ActionRegistrationRolledBack,
		Detail: cause.Error(),
	})
	s.logger.WarnContext(ctx, "registration rolled back",
		"user_id", userID,
		"error", cause.Error(),
	)
}

// Clear removes the local registration and drops the client session.
// Idempotent.
func (s *Service) Clear(ctx context.Context) error {
	current, err := s.store.Get(ctx)
	if err != nil {
		return domainerrors.Wrap(domainerrors.CodeUnavailable, "read session", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		return domainerrors.Wrap(domainerrors.CodeUnavailable, "clear session", err)
	}
	s.client.Reset()

	if s.metrics != nil {
		s.metrics.RegistrationsCleared.Inc()
	}
	userID := ""
	if current != nil {
		userID = current.UserID
	}
	_ = s.journal.Emit(ctx, journal.Event{
		UserID: userID,
		Action: journal.ActionRegistrationCleared,
	})
	return nil
}

// Current returns the persisted session, or nil when unregistered. Always
// re-read from the store; there is no cached "logged in" flag.
func (s *Service) Current(ctx context.Context) (*session.Session, error) {
	sess, err := s.store.Get(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeUnavailable, "read session", err)
	}
	return sess, nil
}

// IsRegistered derives the registration state from the store.
func (s *Service) IsRegistered(ctx context.Context) (bool, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	return sess != nil && sess.Registered(), nil
}
