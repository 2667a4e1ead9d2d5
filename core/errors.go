package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyInput is returned by shells that refuse to convert nothing.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputTooLarge is returned when input exceeds the character ceiling.
	ErrInputTooLarge = errors.New("input too large")
)

// DefaultMaxInputChars is the input ceiling used when none is configured.
const DefaultMaxInputChars = 100000

// CheckInput enforces the shell-level input rules: data must not be blank
// and must not exceed max characters. A max of 0 disables the ceiling.
func CheckInput(data string, max int) error {
	if strings.TrimSpace(data) == "" {
		return ErrEmptyInput
	}
	if max > 0 {
		if n := utf8.RuneCountInString(data); n > max {
			return fmt.Errorf("%w: %d characters, limit is %d", ErrInputTooLarge, n, max)
		}
	}
	return nil
}
