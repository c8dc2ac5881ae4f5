package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/config"
)

// Claims is the JWT payload: the subject user id plus the registered
// issued-at and expires-at claims.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and validates signed, time-limited bearer tokens.
// The signing secret is injected at construction rather than read from
// ambient process state, so the issuer can be tested in isolation.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from auth configuration.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenDuration,
	}
}

// Issue produces a compact HS256-signed token for the given user, expiring
// exactly one TTL from now. Config loading normally guarantees a secret is
// present; if it is somehow empty at call time the request fails with an
// internal error rather than producing an unsigned token.
func (t *TokenIssuer) Issue(userID int) (string, error) {
	if len(t.secret) == 0 {
		return "", apperror.NewInternalError("token signing secret is not configured", nil)
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.Itoa(userID),
			Issuer:    "blogstack",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return tokenString, nil
}

// Verify checks the signature and expiry of a token and returns the
// subject user id. Malformed or badly signed tokens and expired tokens
// both come back as AuthError so callers surface a uniform 401 without
// leaking which check failed; the wrapped cause keeps them
// distinguishable server-side.
func (t *TokenIssuer) Verify(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})

	if err != nil {
		// err wraps jwt.ErrTokenExpired for expiry and other jwt errors for
		// bad signatures or garbage input; the client message is the same.
		return 0, apperror.NewAuthError("invalid or expired token", err)
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, apperror.NewAuthError("invalid or expired token", nil)
	}

	return claims.UserID, nil
}
