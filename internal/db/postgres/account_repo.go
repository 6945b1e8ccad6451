package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Ripple/internal/core/accounts"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) accounts.Repository {
	return &postgresAccountRepo{db: db}
}

// Create inserts a new account into the accounts table
func (r *postgresAccountRepo) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	query := `
		INSERT INTO accounts (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, account.Username, account.Email, account.PasswordHash).
		Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash,
			&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		// Check for unique constraint violation on username
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "accounts_username_key") {
			return nil, accounts.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// GetByUsername retrieves an account by exact username match
// The username column uses a case-sensitive collation, so Foo and foo are
// distinct accounts
func (r *postgresAccountRepo) GetByUsername(ctx context.Context, username string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM accounts WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash,
			&account.CreatedAt, &account.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}

	return account, nil
}

// GetByID retrieves an account by id
func (r *postgresAccountRepo) GetByID(ctx context.Context, id int64) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM accounts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash,
			&account.CreatedAt, &account.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}
