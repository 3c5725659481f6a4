package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmailNotAllowed = errors.New("email domain not allowed")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidFullName = errors.New("invalid full name")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

// BelongsTo reports whether the address is under the given organization domain.
func (e Email) BelongsTo(domain string) bool {
	return strings.HasSuffix(e.value, "@"+strings.ToLower(domain))
}

type FullName struct {
	value string
}

func NewFullName(value string) (FullName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FullName{}, ErrInvalidFullName
	}
	return FullName{value: trimmed}, nil
}

func (n FullName) Value() string {
	return n.value
}

type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if value == "" {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: value}, nil
}

func (p Password) Value() string {
	return p.value
}
