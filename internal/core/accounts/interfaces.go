package accounts

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates a new account with a bcrypt-hashed credential
	Register(ctx context.Context, req RegisterRequest) (*Account, error)

	// Authenticate verifies a username/password pair
	// Returns ErrInvalidCredentials on any mismatch, never revealing which
	// half of the pair was wrong
	Authenticate(ctx context.Context, username, password string) (*Account, error)

	// GetByUsername retrieves an account by its exact username
	// Usernames are case-sensitive
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetByID retrieves an account by its numeric id
	GetByID(ctx context.Context, id int64) (*Account, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	// Create inserts a new account and returns it with id and timestamps set
	// Returns ErrUsernameTaken on a username uniqueness violation
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByUsername retrieves an account by exact username match
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetByID retrieves an account by id
	GetByID(ctx context.Context, id int64) (*Account, error)
}
