// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

const defaultStaffTokenTTL = 12 * time.Hour

// staffTokenService signs and verifies the staff tokens stored as signatures
// on order sub-records.
type staffTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewStaffTokenService is the constructor for staffTokenService.
func NewStaffTokenService(cfg *config.Config) (service.StaffTokenService, error) {
	if cfg.Staff == nil || cfg.Staff.TokenSecret == "" {
		return nil, errors.New("staff token secret must be provided")
	}

	ttl := cfg.Staff.TokenTTL
	if ttl <= 0 {
		ttl = defaultStaffTokenTTL
	}

	return &staffTokenService{
		secret: []byte(cfg.Staff.TokenSecret),
		ttl:    ttl,
	}, nil
}

// Sign issues a signature token for a staff member.
func (s *staffTokenService) Sign(staffID string) (string, error) {
	now := time.Now()
	claims := service.StaffClaims{
		StaffID: staffID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign staff token")
	}

	return signed, nil
}

// Verify validates a signature token and returns its claims.
func (s *staffTokenService) Verify(tokenString string) (*service.StaffClaims, error) {
	claims := &service.StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse staff token")
	}
	if !token.Valid {
		return nil, errors.New("staff token is not valid")
	}
	if claims.StaffID == "" {
		return nil, errors.New("staff token carries no staff id")
	}

	return claims, nil
}
