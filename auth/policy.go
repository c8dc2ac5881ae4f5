package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/user/blogstack-go/apperror"
)

// specialChars is the punctuation set a password must draw at least one
// character from.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// PolicyResult holds the outcome of each composition rule for a candidate
// password. It is computed per registration attempt and never persisted.
type PolicyResult struct {
	Length      bool `json:"length"`
	Uppercase   bool `json:"uppercase"`
	Lowercase   bool `json:"lowercase"`
	Number      bool `json:"number"`
	SpecialChar bool `json:"specialChar"`
}

// Ok reports whether every rule passed.
func (r PolicyResult) Ok() bool {
	return r.Length && r.Uppercase && r.Lowercase && r.Number && r.SpecialChar
}

// CheckPassword evaluates all composition rules independently. It is pure:
// the same input always yields the same result.
func CheckPassword(password string) PolicyResult {
	return PolicyResult{
		Length:      utf8.RuneCountInString(password) >= 8,
		Uppercase:   strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		Lowercase:   strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		Number:      strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		SpecialChar: strings.ContainsAny(password, specialChars),
	}
}

// ValidatePassword checks a candidate password against the policy and
// returns a ValidationError naming the first failed rule, in the fixed
// order length, uppercase, lowercase, number, special character.
func ValidatePassword(password string) error {
	result := CheckPassword(password)
	switch {
	case !result.Length:
		return apperror.NewValidationError("password must be at least 8 characters long", nil)
	case !result.Uppercase:
		return apperror.NewValidationError("password must contain at least one uppercase letter", nil)
	case !result.Lowercase:
		return apperror.NewValidationError("password must contain at least one lowercase letter", nil)
	case !result.Number:
		return apperror.NewValidationError("password must contain at least one digit", nil)
	case !result.SpecialChar:
		return apperror.NewValidationError("password must contain at least one special character", nil)
	}
	return nil
}
