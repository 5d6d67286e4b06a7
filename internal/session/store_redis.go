package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/platform/sentinel"
)

// Redis keys for the persisted session, one key per field like the original
// key-value layout.
const (
	keyUserID      = "cmdemo:session:user_id"
	keyUserContact = "cmdemo:session:user_contact"
	keyUserType    = "cmdemo:session:user_type"
	keyUserInfo    = "cmdemo:session:user_info"
)

// RedisStore persists the session in Redis so it survives process restarts.
type RedisStore struct {
	client   *redis.Client
	notifier *Notifier
}

func NewRedisStore(client *redis.Client, notifier *Notifier) *RedisStore {
	return &RedisStore{client: client, notifier: notifier}
}

func (s *RedisStore) Get(ctx context.Context) (*Session, error) {
	values, err := s.client.MGet(ctx, keyUserID, keyUserContact, keyUserType, keyUserInfo).Result()
	if err != nil {
		return nil, fmt.Errorf("read session: %w: %w", sentinel.ErrUnavailable, err)
	}

	userID, okID := values[0].(string)
	contact, okContact := values[1].(string)
	if !okID || !okContact || userID == "" || contact == "" {
		return nil, nil
	}

	sess := &Session{UserID: userID, ContactValue: contact}

	if rawType, ok := values[2].(string); ok {
		n, err := strconv.Atoi(rawType)
		if err != nil {
			return nil, fmt.Errorf("corrupt user_type %q: %w", rawType, sentinel.ErrInvalidState)
		}
		sess.ContactType = ContactType(n)
	}

	if rawInfo, ok := values[3].(string); ok && rawInfo != "" {
		var info contactsmanager.UserInfo
		if err := json.Unmarshal([]byte(rawInfo), &info); err != nil {
			return nil, fmt.Errorf("corrupt user_info: %w", sentinel.ErrInvalidState)
		}
		sess.Profile = &info
	}

	return sess, nil
}

func (s *RedisStore) Write(ctx context.Context, sess Session) error {
	if !sess.Registered() {
		return fmt.Errorf("refusing to persist incomplete session: %w", sentinel.ErrInvalidState)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyUserID, sess.UserID, 0)
	pipe.Set(ctx, keyUserContact, sess.ContactValue, 0)
	pipe.Set(ctx, keyUserType, strconv.Itoa(int(sess.ContactType)), 0)
	if sess.Profile != nil {
		raw, err := json.Marshal(sess.Profile)
		if err != nil {
			return fmt.Errorf("encode user_info: %w", err)
		}
		pipe.Set(ctx, keyUserInfo, raw, 0)
	} else {
		pipe.Del(ctx, keyUserInfo)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("write session: %w: %w", sentinel.ErrUnavailable, err)
	}

	s.notifier.Publish(Change{Registered: true, UserID: sess.UserID})
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, keyUserID, keyUserContact, keyUserType, keyUserInfo).Err(); err != nil {
		return fmt.Errorf("clear session: %w: %w", sentinel.ErrUnavailable, err)
	}

	s.notifier.Publish(Change{Registered: false})
	return nil
}
