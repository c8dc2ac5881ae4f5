package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/blogstack-go/apperror"
)

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     PolicyResult
	}{
		{
			name:     "all rules pass",
			password: "Abcdef1!",
			want:     PolicyResult{Length: true, Uppercase: true, Lowercase: true, Number: true, SpecialChar: true},
		},
		{
			name:     "too short",
			password: "Ab1!",
			want:     PolicyResult{Length: false, Uppercase: true, Lowercase: true, Number: true, SpecialChar: true},
		},
		{
			name:     "no uppercase",
			password: "abcdef1!",
			want:     PolicyResult{Length: true, Uppercase: false, Lowercase: true, Number: true, SpecialChar: true},
		},
		{
			name:     "no lowercase",
			password: "ABCDEF1!",
			want:     PolicyResult{Length: true, Uppercase: true, Lowercase: false, Number: true, SpecialChar: true},
		},
		{
			name:     "no digit",
			password: "Abcdefg!",
			want:     PolicyResult{Length: true, Uppercase: true, Lowercase: true, Number: false, SpecialChar: true},
		},
		{
			name:     "no special character",
			password: "Abcdefg1",
			want:     PolicyResult{Length: true, Uppercase: true, Lowercase: true, Number: true, SpecialChar: false},
		},
		{
			name:     "empty password fails everything",
			password: "",
			want:     PolicyResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CheckPassword(tt.password))
		})
	}
}

func TestCheckPassword_Deterministic(t *testing.T) {
	t.Parallel()

	first := CheckPassword("Abcdef1!")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CheckPassword("Abcdef1!"))
	}
}

func TestValidatePassword_FirstViolationWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{
			// Violates every rule; length is reported because it is
			// checked first.
			name:     "length before all others",
			password: "",
			wantMsg:  "password must be at least 8 characters long",
		},
		{
			name:     "uppercase before lowercase",
			password: "abcdefgh1!",
			wantMsg:  "password must contain at least one uppercase letter",
		},
		{
			name:     "lowercase before number",
			password: "ABCDEFGH",
			wantMsg:  "password must contain at least one lowercase letter",
		},
		{
			name:     "number before special",
			password: "Abcdefgh",
			wantMsg:  "password must contain at least one digit",
		},
		{
			name:     "special last",
			password: "Abcdefg1",
			wantMsg:  "password must contain at least one special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.password)
			require.Error(t, err)
			require.True(t, apperror.IsValidationError(err))
			appErr, ok := apperror.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	t.Parallel()

	for _, password := range []string{"Abcdef1!", `Pa55"word`, "Xy9<zzzzzz", "A1b2C3d4,"} {
		assert.NoError(t, ValidatePassword(password), "password %q should pass", password)
	}
}
