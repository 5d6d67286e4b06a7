package contactsmanager

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry reads the exp claim from the session token without verifying
// the signature. Verification is the server's job; the client only needs the
// expiry to fail fast instead of sending doomed requests.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("session token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}
