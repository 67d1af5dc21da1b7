package service

import (
	"time"

	"kioskdash/internal/domain/entity"
)

// SessionTokenService mints and verifies stateless signed session credentials.
type SessionTokenService interface {
	// Issue signs the session with the given lifetime and fills IssuedAt/ExpiresAt.
	Issue(session *entity.Session, ttl time.Duration) (string, error)

	// Verify returns the session carried by token, or nil when the token is
	// malformed, tampered with, signed with another algorithm, or expired.
	Verify(token string) *entity.Session
}
