// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"kioskdash/config"
	"kioskdash/internal/domain/entity"
	"kioskdash/internal/domain/service"
)

const sessionIssuer = "kioskdash"

// impersonatorClaims carries the originating admin through an impersonation token.
type impersonatorClaims struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	MerchantID     string `json:"merchant_id"`
	MerchantName   string `json:"merchant_name,omitempty"`
}

// sessionClaims is the signed payload of a session token.
type sessionClaims struct {
	OrganizationID string              `json:"organization_id"`
	MerchantID     string              `json:"merchant_id"`
	MerchantName   string              `json:"merchant_name,omitempty"`
	Email          string              `json:"email,omitempty"`
	IsSuperAdmin   bool                `json:"is_super_admin"`
	Impersonating  string              `json:"impersonating,omitempty"`
	Impersonator   *impersonatorClaims `json:"impersonator,omitempty"`
	jwt.RegisteredClaims
}

// sessionTokenService is an HS256 implementation of service.SessionTokenService.
type sessionTokenService struct {
	secret []byte
	now    func() time.Time
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	return newSessionTokenService(cfg.SecretKey.Session, time.Now)
}

func newSessionTokenService(secret string, now func() time.Time) (*sessionTokenService, error) {
	if secret == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &sessionTokenService{secret: []byte(secret), now: now}, nil
}

// Issue signs the session with the given lifetime.
func (s *sessionTokenService) Issue(session *entity.Session, ttl time.Duration) (string, error) {
	if session == nil {
		return "", errors.New("session is required")
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := sessionClaims{
		OrganizationID: session.OrganizationID,
		MerchantID:     session.MerchantID,
		MerchantName:   session.MerchantName,
		Email:          session.Email,
		IsSuperAdmin:   session.IsSuperAdmin,
		Impersonating:  session.Impersonating,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   session.MerchantID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if imp := session.Impersonator; imp != nil {
		claims.Impersonator = &impersonatorClaims{
			Email:          imp.Email,
			OrganizationID: imp.OrganizationID,
			MerchantID:     imp.MerchantID,
			MerchantName:   imp.MerchantName,
		}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	session.IssuedAt = issuedAt
	session.ExpiresAt = expiresAt

	return token, nil
}

// Verify returns nil for any token that does not verify.
func (s *sessionTokenService) Verify(token string) *entity.Session {
	if token == "" {
		return nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.OrganizationID == "" {
		return nil
	}

	session := &entity.Session{
		OrganizationID: claims.OrganizationID,
		MerchantID:     claims.MerchantID,
		MerchantName:   claims.MerchantName,
		Email:          claims.Email,
		IsSuperAdmin:   claims.IsSuperAdmin,
		Impersonating:  claims.Impersonating,
		ExpiresAt:      claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if imp := claims.Impersonator; imp != nil {
		session.Impersonator = &entity.Impersonator{
			Email:          imp.Email,
			OrganizationID: imp.OrganizationID,
			MerchantID:     imp.MerchantID,
			MerchantName:   imp.MerchantName,
		}
	}

	return session
}
