package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/blogstack-go/apperror"
)

func TestPgxUserStore_CreateUser(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "digest").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	store := NewPgxUserStore(mock)
	user, err := store.CreateUser(context.Background(), "alice", "digest")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, Username: "alice", HashedPassword: "digest"}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserStore_CreateUser_UniqueViolation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "digest").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})

	store := NewPgxUserStore(mock)
	_, err = store.CreateUser(context.Background(), "alice", "digest")
	require.Error(t, err)
	assert.True(t, apperror.IsConflictError(err), "a unique violation must translate to ConflictError")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserStore_CreateUser_DatabaseError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "digest").
		WillReturnError(errors.New("connection reset"))

	store := NewPgxUserStore(mock)
	_, err = store.CreateUser(context.Background(), "alice", "digest")
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.DatabaseError, appErr.Type)
}

func TestPgxUserStore_GetUserByUsername(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password"}).AddRow(1, "alice", "digest"))

	store := NewPgxUserStore(mock)
	user, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, Username: "alice", HashedPassword: "digest"}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgxUserStore_GetUserByUsername_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, username, password FROM users").
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password"}))

	store := NewPgxUserStore(mock)
	_, err = store.GetUserByUsername(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
