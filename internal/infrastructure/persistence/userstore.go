// Package persistence implements the repositories over flat JSON documents.
// Each store holds the whole serialized state of its domain and is reloaded
// on every read and rewritten wholesale on every write; a per-store mutex
// makes the read-modify-write cycle safe for a single process.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ecomplaint/internal/domain/user"
	vo "ecomplaint/internal/domain/user/valueobjects"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
)

const usersFileName = "users.json"

// userRecord is the persisted shape of a user. The field names match the
// legacy users.json document, including "password" for the hash.
type userRecord struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore persists the user table as a map from email to record.
type UserStore struct {
	path   string
	mu     sync.Mutex
	logger logger.Interface
}

func NewUserStore(dataDir string, log logger.Interface) (*UserStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &UserStore{
		path:   filepath.Join(dataDir, usersFileName),
		logger: log,
	}, nil
}

func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	email := u.Email().String()
	if _, exists := users[email]; exists {
		return errors.NewConflictError("email already registered", email)
	}

	users[email] = userRecord{
		Name:         u.Name(),
		Email:        email,
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		IsAdmin:      u.IsAdmin(),
		CreatedAt:    u.CreatedAt(),
	}

	return s.save(users)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	record, exists := users[email]
	if !exists {
		return nil, nil
	}

	return recordToUser(record)
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return false, err
	}

	_, exists := users[email]
	return exists, nil
}

func (s *UserStore) load() (map[string]userRecord, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]userRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read user table: %w", err)
	}

	var users map[string]userRecord
	if err := json.Unmarshal(content, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user table: %w", err)
	}
	if users == nil {
		users = map[string]userRecord{}
	}
	return users, nil
}

func (s *UserStore) save(users map[string]userRecord) error {
	bytes, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user table: %w", err)
	}

	// Write to a temporary file and rename so a crash mid-write leaves
	// either the old document or the new one, never a torn file.
	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write user table: %w", err)
	}
	return os.Rename(tempPath, s.path)
}

func recordToUser(record userRecord) (*user.User, error) {
	email, err := vo.NewEmail(record.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user record %q: %w", record.Email, err)
	}
	return user.ReconstructUser(email, record.Name, record.Phone, record.PasswordHash, record.IsAdmin, record.CreatedAt)
}
