package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// StaffClaims are the claims carried by a staff signature token.
type StaffClaims struct {
	StaffID string `json:"staff_id"`
	jwt.RegisteredClaims
}

// StaffTokenService issues and verifies the staff tokens that sign order
// sub-records (refunds, replacements, corrections). The compact token
// string is stored on the sub-record as its signature.
type StaffTokenService interface {
	// Sign issues a signature token for a staff member.
	Sign(staffID string) (string, error)

	// Verify validates a signature token and returns its claims.
	Verify(token string) (*StaffClaims, error)
}

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext credential.
	Hash(password string) (string, error)

	// Check compares a plaintext credential with a hash to see if they match.
	Check(password, hash string) bool
}
