package contactsmanager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newInitializedClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	token := testToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/initialize" {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"session_token":        token,
				"organization_user_id": "org-user-1",
			})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL)
	_, err := client.Initialize(context.Background(), "key", UserInfo{UserID: "user-1"})
	require.NoError(t, err)
	return client
}

func TestInitialize(t *testing.T) {
	t.Run("stores session token and expiry", func(t *testing.T) {
		token := testToken(t, time.Hour)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/initialize", r.URL.Path)

			var req struct {
				APIKey   string   `json:"api_key"`
				UserInfo UserInfo `json:"user_info"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "valid-key", req.APIKey)
			assert.Equal(t, "user-1", req.UserInfo.UserID)

			_ = json.NewEncoder(w).Encode(map[string]string{"session_token": token})
		}))
		defer srv.Close()

		client := New(srv.URL)
		res, err := client.Initialize(context.Background(), "valid-key", UserInfo{UserID: "user-1", Email: "a@b.com"})
		require.NoError(t, err)
		assert.Equal(t, token, res.SessionToken)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
		assert.True(t, client.IsInitialized())
	})

	t.Run("invalid api key maps to sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"code":    "invalid_api_key",
				"message": "API key was rejected",
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.Initialize(context.Background(), "bad-key", UserInfo{UserID: "user-1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAPIKey)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Contains(t, apiErr.Message, "rejected")
		assert.False(t, client.IsInitialized())
	})

	t.Run("generic upstream error keeps envelope details", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"code":    "storage_error",
				"message": "profile write failed",
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.Initialize(context.Background(), "key", UserInfo{UserID: "user-1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidAPIKey)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "storage_error", apiErr.Code)
	})
}

func TestAuthedCallsRequireSession(t *testing.T) {
	t.Run("uninitialized client fails fast", func(t *testing.T) {
		client := New("http://unused.invalid")
		_, err := client.SearchContacts(context.Background(), "al", 10)
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("expired token fails fast", func(t *testing.T) {
		token := testToken(t, -time.Minute)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"session_token": token})
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.Initialize(context.Background(), "key", UserInfo{UserID: "user-1"})
		require.NoError(t, err)

		_, err = client.Followers(context.Background(), 1)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("reset drops the session", func(t *testing.T) {
		client := newInitializedClient(t, func(w http.ResponseWriter, r *http.Request) {})
		require.True(t, client.IsInitialized())

		client.Reset()
		assert.False(t, client.IsInitialized())
		_, err := client.Feed(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}

func TestContactCalls(t *testing.T) {
	t.Run("search passes query and bearer token", func(t *testing.T) {
		client := newInitializedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/contacts/search", r.URL.Path)
			assert.Equal(t, "alice", r.URL.Query().Get("query"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

			_ = json.NewEncoder(w).Encode(map[string]any{
				"contacts": []Contact{{ID: "c1", GivenName: "Alice"}},
			})
		})

		contacts, err := client.SearchContacts(context.Background(), "alice", 5)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "Alice", contacts[0].GivenName)
	})

	t.Run("recommendation kinds hit distinct endpoints", func(t *testing.T) {
		var paths []string
		client := newInitializedClient(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"recommendations": []Recommendation{}})
		})

		ctx := context.Background()
		_, err := client.ContactsToInvite(ctx, 10)
		require.NoError(t, err)
		_, err = client.ContactsUsingApp(ctx, 10)
		require.NoError(t, err)
		_, err = client.ContactsNearby(ctx, 10)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"/v1/contacts/recommendations/invite",
			"/v1/contacts/recommendations/app-users",
			"/v1/contacts/recommendations/nearby",
		}, paths)
	})
}

func TestSocialCalls(t *testing.T) {
	t.Run("follow round trip", func(t *testing.T) {
		client := newInitializedClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/v1/social/follow":
				var req struct {
					FollowedID string `json:"followed_id"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "org-user-2", req.FollowedID)
				_ = json.NewEncoder(w).Encode(FollowRelationship{ID: "rel-1"})
			case r.Method == http.MethodGet && r.URL.Path == "/v1/social/follow/org-user-2":
				_ = json.NewEncoder(w).Encode(map[string]bool{"following": true})
			case r.Method == http.MethodDelete && r.URL.Path == "/v1/social/follow/org-user-2":
				w.WriteHeader(http.StatusNoContent)
			default:
				t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
			}
		})

		ctx := context.Background()
		rel, err := client.FollowContact(ctx, "org-user-2")
		require.NoError(t, err)
		assert.Equal(t, "rel-1", rel.ID)

		following, err := client.IsFollowingContact(ctx, "org-user-2")
		require.NoError(t, err)
		assert.True(t, following)

		require.NoError(t, client.UnfollowContact(ctx, "org-user-2"))
	})

	t.Run("feeds and events page through", func(t *testing.T) {
		client := newInitializedClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			_ = json.NewEncoder(w).Encode(EventPage{
				Items: []SocialEvent{{ID: "e1", EventType: "post", Title: "hello"}},
				Total: 1,
			})
		})

		ctx := context.Background()
		for _, fetch := range []func() (*EventPage, error){
			func() (*EventPage, error) { return client.Feed(ctx, 2) },
			func() (*EventPage, error) { return client.ForYouFeed(ctx, 2) },
			func() (*EventPage, error) { return client.ContactEvents(ctx, 2) },
		} {
			page, err := fetch()
			require.NoError(t, err)
			require.Len(t, page.Items, 1)
			assert.Equal(t, "hello", page.Items[0].Title)
		}
	})
}
