package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher backs the user domain's PasswordHasher port with
// bcrypt. Citizen passwords are stored only as bcrypt hashes in users.json.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher clamps an out-of-range cost to the bcrypt default.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// One message for mismatch and malformed hash alike; the login path
		// folds it into its generic credentials error anyway.
		return fmt.Errorf("password verification failed")
	}
	return nil
}
