// Package auth implements registration, login, and logout: password policy
// validation, credential hashing, token issuance and verification, and the
// HTTP handlers that orchestrate them.
package auth

import (
	"context"
	"log"

	"github.com/user/blogstack-go/apperror"
)

// AuthService orchestrates the credential store, password policy, hasher,
// and token issuer for the register/login/logout operations. It holds no
// mutable state of its own; every request is handled independently.
type AuthService struct {
	store  UserStore
	hasher *BcryptHasher
	tokens *TokenIssuer
}

// NewAuthService creates an AuthService with its collaborators injected.
func NewAuthService(store UserStore, hasher *BcryptHasher, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user. The password must satisfy every policy rule;
// the first violated rule fails the request with its own message. Username
// uniqueness is left to the storage layer's constraint so concurrent
// registrations cannot slip past a stale lookup.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewBadRequestError("username and password are required", nil)
	}

	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Printf("Error hashing password during registration: %v", err)
		return nil, apperror.NewInternalError("error registering user", err)
	}

	user, err := s.store.CreateUser(ctx, req.Username, hashedPassword)
	if err != nil {
		if apperror.IsConflictError(err) {
			return nil, err
		}
		log.Printf("Storage error during registration: %v", err)
		return nil, apperror.NewInternalError("error registering user", err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token for the user. A
// missing user comes back as a NotFoundError so the handler can decide how
// to surface it; a password mismatch is an AuthError.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewBadRequestError("username and password are required", nil)
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		log.Printf("Storage error during login: %v", err)
		return nil, apperror.NewInternalError("error logging in", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token during login: %v", err)
		return nil, apperror.NewInternalError("error logging in", err)
	}

	return &TokenResponse{Token: token}, nil
}

// VerifyToken validates a bearer token and returns the subject user id.
func (s *AuthService) VerifyToken(tokenString string) (int, error) {
	return s.tokens.Verify(tokenString)
}
