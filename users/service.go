// Package users manages user records outside the authentication flow:
// fetching, username edits, and deletion.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/blogstack-go/apperror"
)

// DB is the subset of pgxpool.Pool the service uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserService provides user record management.
type UserService struct {
	db DB
}

// NewUserService creates a new UserService.
func NewUserService(db DB) *UserService {
	return &UserService{db: db}
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID int) (*UserResponse, error) {
	var user UserResponse
	query := `SELECT id, username FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", userID), nil)
		}
		return nil, apperror.NewDatabaseError("error fetching user", err)
	}
	return &user, nil
}

// UpdateUsername changes a user's username. The new name must be unique.
func (s *UserService) UpdateUsername(ctx context.Context, userID int, username string) (*UserResponse, error) {
	var user UserResponse
	query := `UPDATE users SET username = $1 WHERE id = $2 RETURNING id, username`
	err := s.db.QueryRow(ctx, query, username, userID).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", userID), nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperror.NewConflictError("username already exists", nil)
		}
		return nil, apperror.NewDatabaseError("error updating user", err)
	}
	return &user, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return apperror.NewDatabaseError("error deleting user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", userID), nil)
	}
	return nil
}
