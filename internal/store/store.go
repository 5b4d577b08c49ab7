// Package store keeps named board snapshots on disk or in a database.
package store

import (
	"errors"
	"fmt"
)

var (
	ErrBadName   = errors.New("bad name for saved game")
	ErrNotFound  = errors.New("saved game not found")
	ErrExists    = errors.New("saved game already exists")
	ErrMalformed = errors.New("malformed saved game")
)

const maxNameLen = 64

func isNameRune(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' || c == '-' || c == '_'
}

// ValidateName accepts non-empty names made of Latin letters, digits, '-' and
// '_'.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	for _, c := range name {
		if !isNameRune(c) {
			return fmt.Errorf("%w: %q", ErrBadName, name)
		}
	}
	return nil
}
