package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Usernames must start/end with alphanumeric and may contain dots,
// underscores and hyphens in between. Case is significant.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

const (
	maxUsernameLength = 64
	minPasswordLength = 8
)

type accountService struct {
	repo Repository
}

// NewAccountService creates a new account service
func NewAccountService(repo Repository) Service {
	return &accountService{
		repo: repo,
	}
}

// Register creates a new account with a bcrypt-hashed credential
func (s *accountService) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}

	// Repository surfaces ErrUsernameTaken on the unique constraint
	return s.repo.Create(ctx, account)
}

// Authenticate verifies a username/password pair
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Don't reveal whether the username exists
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// GetByUsername retrieves an account by its exact username
func (s *accountService) GetByUsername(ctx context.Context, username string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrAccountNotFound
	}

	return s.repo.GetByUsername(ctx, username)
}

// GetByID retrieves an account by its numeric id
func (s *accountService) GetByID(ctx context.Context, id int64) (*Account, error) {
	if id <= 0 {
		return nil, ErrAccountNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func (s *accountService) validateRegisterRequest(req RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return NewValidationError("username", "username is required")
	}
	if len(username) > maxUsernameLength {
		return NewValidationError("username", fmt.Sprintf("username must not exceed %d characters", maxUsernameLength))
	}
	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "username may only contain letters, digits, dots, underscores and hyphens")
	}

	if len(req.Password) < minPasswordLength {
		return NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	return nil
}
