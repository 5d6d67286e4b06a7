package contactsmanager

import "time"

// AccessStatus mirrors the contact-store permission state owned by the
// ContactsManager service. It is re-read on demand and never cached locally.
type AccessStatus string

const (
	AccessNotDetermined AccessStatus = "not_determined"
	AccessDenied        AccessStatus = "denied"
	AccessAuthorized    AccessStatus = "authorized"
	AccessRestricted    AccessStatus = "restricted"
)

// UserInfo is the extended registration payload the service expects at
// initialization time.
type UserInfo struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// InitResult is returned by Initialize. The session token is a JWT scoped to
// the registered user; its expiry is read client-side so calls can fail fast
// instead of bouncing off a 401.
type InitResult struct {
	SessionToken string    `json:"session_token"`
	OrgUserID    string    `json:"organization_user_id"`
	ExpiresAt    time.Time `json:"-"`
}

// Contact is a contact record as the service returns it.
type Contact struct {
	ID          string   `json:"id"`
	GivenName   string   `json:"given_name"`
	FamilyName  string   `json:"family_name"`
	DisplayName string   `json:"display_name,omitempty"`
	Phones      []string `json:"phones,omitempty"`
	Emails      []string `json:"emails,omitempty"`
	OrgUserID   string   `json:"organization_user_id,omitempty"`
}

// NewContact is the creation payload for the bulk contact endpoint.
type NewContact struct {
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Phones     []string `json:"phones,omitempty"`
	Emails     []string `json:"emails,omitempty"`
}

// Recommendation pairs a contact with an opaque relevance score computed
// server-side.
type Recommendation struct {
	Contact Contact `json:"contact"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason,omitempty"`
}

// FollowRelationship is one edge of the follow graph. Follower or Followed is
// populated depending on which direction was queried.
type FollowRelationship struct {
	ID        string    `json:"id"`
	Follower  *Contact  `json:"follower,omitempty"`
	Followed  *Contact  `json:"followed,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialEvent is a feed item created through the social service.
type SocialEvent struct {
	ID          string    `json:"id"`
	EventType   string    `json:"event_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEventRequest is the event creation payload.
type CreateEventRequest struct {
	EventType   string `json:"event_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// FollowPage is one page of follow relationships.
type FollowPage struct {
	Items    []FollowRelationship `json:"items"`
	Total    int                  `json:"total"`
	NextPage int                  `json:"next_page,omitempty"`
}

// EventPage is one page of social events.
type EventPage struct {
	Items    []SocialEvent `json:"items"`
	Total    int           `json:"total"`
	NextPage int           `json:"next_page,omitempty"`
}
