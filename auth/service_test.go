package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/config"
)

// fakeUserStore is an in-memory UserStore enforcing username uniqueness
// the way the real table's constraint does.
type fakeUserStore struct {
	users  map[string]*User
	nextID int
	// failWith, when set, makes every call fail to simulate storage
	// outages.
	failWith error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*User), nextID: 1}
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, hashedPassword string) (*User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, exists := f.users[username]; exists {
		return nil, apperror.NewConflictError("username already exists", nil)
	}
	user := &User{ID: f.nextID, Username: username, HashedPassword: hashedPassword}
	f.nextID++
	f.users[username] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, exists := f.users[username]
	if !exists {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return user, nil
}

func newTestService(store UserStore) *AuthService {
	issuer := NewTokenIssuer(config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour})
	return NewAuthService(store, NewBcryptHasher(), issuer)
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	user, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)

	// The stored hash verifies against the original password and never
	// equals the plaintext.
	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Abcdef1!", stored.HashedPassword)
	assert.True(t, NewBcryptHasher().Verify("Abcdef1!", stored.HashedPassword))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())

	for _, req := range []RegisterRequest{
		{},
		{Username: "alice"},
		{Password: "Abcdef1!"},
	} {
		_, err := svc.Register(context.Background(), req)
		require.Error(t, err)
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.BadRequestError, appErr.Type)
	}
}

func TestAuthService_Register_PolicyViolation(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "weak"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	assert.Empty(t, store.users, "no user may be persisted on a policy violation")
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflictError(err))
	assert.Len(t, store.users, 1, "duplicate registration must not add a row")
}

func TestAuthService_Register_StorageFailure(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	store.failWith = apperror.NewDatabaseError("boom", errors.New("connection reset"))
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.InternalError, appErr.Type)
	assert.Equal(t, "error registering user", appErr.Message, "storage detail must not leak")
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	registered, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "Abcdef1!"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// The issued token maps back to the registered user.
	userID, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "Abcdef1!"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err), "unknown user stays a distinct not-found kind internally")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "Abcdef1!"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "Wrong1!pass"})
	require.Error(t, err)
	assert.Nil(t, resp, "no token may be returned on a credential mismatch")
	assert.True(t, apperror.IsAuthError(err))
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice"})
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequestError, appErr.Type)
}
