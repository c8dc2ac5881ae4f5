package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/blogstack-go/apperror"
)

// DB is the subset of pgxpool.Pool the store uses. Narrowing the
// dependency to an interface lets tests substitute a pgxmock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserStore is the boundary to the persisted users table.
type UserStore interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// PgxUserStore implements UserStore against PostgreSQL.
type PgxUserStore struct {
	db DB
}

// NewPgxUserStore creates a PgxUserStore.
func NewPgxUserStore(db DB) *PgxUserStore {
	return &PgxUserStore{db: db}
}

// CreateUser inserts a new user record. Username uniqueness is enforced by
// the table's unique constraint, not by a prior lookup: two concurrent
// registrations for the same name race harmlessly and the loser gets a
// ConflictError translated from the unique violation.
func (s *PgxUserStore) CreateUser(ctx context.Context, username, hashedPassword string) (*User, error) {
	user := &User{Username: username, HashedPassword: hashedPassword}

	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	err := s.db.QueryRow(ctx, query, username, hashedPassword).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperror.NewConflictError("username already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetUserByUsername fetches a user record, including the password digest,
// by unique username.
func (s *PgxUserStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	query := `SELECT id, username, password FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.HashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by username", err)
	}
	return &user, nil
}

var _ UserStore = (*PgxUserStore)(nil)
