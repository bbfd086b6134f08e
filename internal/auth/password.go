package auth

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooLong  = errors.New("auth: password must be 72 bytes or fewer")
	ErrPasswordMismatch = errors.New("auth: invalid password")
)

// PasswordHasher hashes and verifies local account passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: constants.BcryptCost}
}

// NewPasswordHasherWithCost is used by tests in other packages to keep
// hashing fast.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	// bcrypt silently ignores everything past 72 bytes.
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify returns ErrPasswordMismatch when plaintext does not match hash.
// An empty hash never matches.
func (p *PasswordHasher) Verify(hash, plaintext string) error {
	if hash == "" {
		return ErrPasswordMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
