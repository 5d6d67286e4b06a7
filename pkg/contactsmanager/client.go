package contactsmanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client is the ContactsManager API client. All contact sync, recommendation
// scoring, and social-graph logic lives server-side; this client is transport
// only. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.RWMutex
	sessionToken string
	tokenExpiry  time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client, e.g. for tests or custom
// timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client against the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Initialize establishes a session with the service for the given user. On
// success the returned session token authenticates all subsequent calls. A
// rejected API key surfaces as ErrInvalidAPIKey.
func (c *Client) Initialize(ctx context.Context, apiKey string, info UserInfo) (*InitResult, error) {
	req := struct {
		APIKey   string   `json:"api_key"`
		UserInfo UserInfo `json:"user_info"`
	}{APIKey: apiKey, UserInfo: info}

	var res InitResult
	if err := c.do(ctx, http.MethodPost, "/v1/initialize", nil, req, &res, false); err != nil {
		return nil, err
	}

	expiry, err := tokenExpiry(res.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	res.ExpiresAt = expiry

	c.mu.Lock()
	c.sessionToken = res.SessionToken
	c.tokenExpiry = expiry
	c.mu.Unlock()

	return &res, nil
}

// IsInitialized reports whether the client holds an unexpired session token.
func (c *Client) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionToken != "" && time.Now().Before(c.tokenExpiry)
}

// Reset drops the session token, returning the client to its uninitialized
// state. Used when the local registration is cleared.
func (c *Client) Reset() {
	c.mu.Lock()
	c.sessionToken = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// AccessStatus returns the current contact-store permission state. Always a
// live query so permission changes made outside the app are visible. Not tied
// to a session: registration itself depends on this answer.
func (c *Client) AccessStatus(ctx context.Context) (AccessStatus, error) {
	var res struct {
		Status AccessStatus `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/access/status", nil, nil, &res, false); err != nil {
		return AccessNotDetermined, err
	}
	return res.Status, nil
}

// RequestAccess asks the service to prompt for contact-store access. Blocks
// until the prompt resolves; returns whether access is now authorized.
func (c *Client) RequestAccess(ctx context.Context) (bool, error) {
	var res struct {
		Granted bool `json:"granted"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/access/request", nil, nil, &res, false); err != nil {
		return false, err
	}
	return res.Granted, nil
}

// bearerToken returns the current session token or an error when the client
// cannot authenticate the call.
func (c *Client) bearerToken() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sessionToken == "" {
		return "", ErrNotInitialized
	}
	if !time.Now().Before(c.tokenExpiry) {
		return "", ErrSessionExpired
	}
	return c.sessionToken, nil
}

// do issues one JSON request. authed calls attach the bearer token and fail
// fast when no valid session exists.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, authed bool) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if authed {
		token, err := c.bearerToken()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contactsmanager: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
