package user

import (
	"fmt"
	"time"

	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/authorization"
)

// User represents the user aggregate root. Records are keyed by email and
// are never updated after registration, so the aggregate exposes no field
// mutators beyond the password and admin-grant hooks used at creation time.
type User struct {
	email        *vo.Email
	name         string
	phone        string
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
}

// NewUser creates a new user aggregate with initial values
func NewUser(email *vo.Email, name, phone string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}

	return &User{
		email:     email,
		name:      name,
		phone:     phone,
		createdAt: time.Now(),
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(email *vo.Email, name, phone, passwordHash string, isAdmin bool, createdAt time.Time) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &User{
		email:        email,
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
	}, nil
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's phone number
func (u *User) Phone() string {
	return u.phone
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsAdmin reports whether the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.isAdmin
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Role maps the admin flag to the shared authorization role
func (u *User) Role() authorization.UserRole {
	if u.isAdmin {
		return authorization.RoleAdmin
	}
	return authorization.RoleUser
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	return nil
}

// SetPasswordHash stores an already-computed hash. Used when the password
// comes from configuration rather than a registration form, so the
// registration password policy does not apply.
func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	return nil
}

// VerifyPassword checks the given plaintext against the stored hash
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// GrantAdmin marks the user as an administrator. Only used when
// bootstrapping the well-known admin account.
func (u *User) GrantAdmin() {
	u.isAdmin = true
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
