package contactsmanager

import (
	"errors"
	"fmt"
)

// Client-level sentinel errors. Callers match with errors.Is; the full
// *APIError remains reachable through errors.As when status or message
// details matter.
var (
	ErrNotInitialized = errors.New("contactsmanager: client not initialized")
	ErrSessionExpired = errors.New("contactsmanager: session token expired")
	ErrInvalidAPIKey  = errors.New("contactsmanager: invalid API key")
	ErrAccessDenied   = errors.New("contactsmanager: contacts access denied")
)

// APIError is a non-2xx response decoded from the service's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contactsmanager: %s (%s, http %d)", e.Message, e.Code, e.Status)
}

// Is maps well-known service error codes onto the package sentinels so call
// sites can branch without string comparisons.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidAPIKey:
		return e.Code == "invalid_api_key"
	case ErrAccessDenied:
		return e.Code == "access_denied"
	case ErrSessionExpired:
		return e.Code == "session_expired"
	}
	return false
}
