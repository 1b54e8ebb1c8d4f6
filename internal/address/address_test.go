package address

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed case with spaces", in: "  User@MAIL.RU ", want: "user@mail.ru"},
		{name: "already normalized", in: "user@mail.ru", want: "user@mail.ru"},
		{name: "tabs and newlines", in: "\tBob@Example.com\n", want: "bob@example.com"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	login, domain, err := Split("user@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, "user", login)
	assert.Equal(t, "mail.ru", domain)
}

func TestSplit_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"bad", "a@b@c", "", "@@"} {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			login, domain, err := Split(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAddress), "error should wrap ErrInvalidAddress, got %v", err)
			assert.Empty(t, login)
			assert.Empty(t, domain)
		})
	}
}

func TestSplit_EmptyParts(t *testing.T) {
	t.Parallel()

	// A single @ is enough, even with empty sides.
	login, domain, err := Split("@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, "", login)
	assert.Equal(t, "mail.ru", domain)
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		login  string
		domain string
		want   string
	}{
		{name: "two chars", login: "us", domain: "mail.ru", want: "us***@mail.ru"},
		{name: "one char", login: "u", domain: "mail.ru", want: "u***@mail.ru"},
		{name: "long login", login: "default", domain: "study.com", want: "de***@study.com"},
		{name: "empty login", login: "", domain: "mail.ru", want: "***@mail.ru"},
		{name: "cyrillic login", login: "иван", domain: "почта.рф", want: "ив***@почта.рф"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Mask(tt.login, tt.domain))
		})
	}
}

func TestMaskAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bo***@mail.ru", MaskAddress(" Bob@Mail.ru"))
	assert.Equal(t, "***", MaskAddress("no-at-sign"))
}
