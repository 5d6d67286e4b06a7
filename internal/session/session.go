package session

import (
	"regexp"
	"strings"

	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/domainerrors"
)

// ContactType discriminates the format of a session's contact value. The
// integer values are part of the persisted format.
type ContactType int

const (
	ContactTypeEmail ContactType = 0
	ContactTypePhone ContactType = 1
)

func (t ContactType) String() string {
	if t == ContactTypePhone {
		return "phone"
	}
	return "email"
}

// ParseContactType converts the wire representation ("email"/"phone").
func ParseContactType(s string) (ContactType, error) {
	switch s {
	case "email":
		return ContactTypeEmail, nil
	case "phone":
		return ContactTypePhone, nil
	default:
		return ContactTypeEmail, domainerrors.New(domainerrors.CodeInvalidInput, "contact_type must be email or phone")
	}
}

// Session is the single device-local registered identity. UserID is generated
// once per registration and never changes until the registration is cleared.
type Session struct {
	UserID       string
	ContactValue string
	ContactType  ContactType
	Profile      *contactsmanager.UserInfo
}

// Registered reports whether this session represents a completed
// registration. Both fields present is the invariant; empty-string fields are
// never written.
func (s Session) Registered() bool {
	return s.UserID != "" && s.ContactValue != ""
}

// emailPattern matches the service's registration rule: local part, domain,
// TLD of 2-64 letters.
var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// ValidEmail reports whether the value is an acceptable registration email.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidPhone accepts any value carrying at least 10 digits once separators
// and symbols are stripped.
func ValidPhone(value string) bool {
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// ValidateContact checks value against the declared type before anything is
// persisted.
func ValidateContact(value string, contactType ContactType) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.New(domainerrors.CodeInvalidInput, "contact value must not be empty")
	}
	switch contactType {
	case ContactTypeEmail:
		if !ValidEmail(value) {
			return domainerrors.New(domainerrors.CodeInvalidInput, "invalid email address")
		}
	case ContactTypePhone:
		if !ValidPhone(value) {
			return domainerrors.New(domainerrors.CodeInvalidInput, "phone number must contain at least 10 digits")
		}
	default:
		return domainerrors.New(domainerrors.CodeInvalidInput, "unknown contact type")
	}
	return nil
}
