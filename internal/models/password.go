package models

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"shopcart/internal/apperrors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 20
)

var passwordPattern = regexp.MustCompile(`^[0-9a-zA-Z]*$`)

// Password is a raw customer password that passed the length and character rules.
type Password struct {
	value string
}

// NewPassword validates raw and wraps it. The returned error is an *apperrors.ValidationError.
func NewPassword(raw string) (Password, error) {
	if n := utf8.RuneCountInString(raw); n < passwordMinLength || n > passwordMaxLength {
		return Password{}, apperrors.NewValidationError(
			fmt.Sprintf("password must be between %d and %d characters", passwordMinLength, passwordMaxLength))
	}
	if !passwordPattern.MatchString(raw) {
		return Password{}, apperrors.NewValidationError("password must consist of letters and digits only")
	}
	return Password{value: raw}, nil
}

func (p Password) Value() string {
	return p.value
}
