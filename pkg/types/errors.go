package types

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup errors.
var (
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")
)

// Conflict errors raised on creation.
var (
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
	ErrDuplicateBook = errors.New("a book with this title and author already exists")
	ErrDuplicateUser = errors.New("a user with this ID already exists")
)

// Input validation errors.
var (
	ErrInvalidYear     = errors.New("publication year out of range")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidDuration = errors.New("loan duration must be between 1 and 60 days")
)

// State conflict errors.
var (
	ErrBookUnavailable = errors.New("book is not available")
	ErrBookBorrowed    = errors.New("book is currently borrowed")
	ErrUserInactive    = errors.New("user account is inactive")
	ErrHasActiveLoans  = errors.New("user has active loans")
	ErrNoActiveLoan    = errors.New("no active loan for this book and user")
)

// ErrCanceled is returned when the operator cancels a disambiguation
// prompt. No state is modified.
var ErrCanceled = errors.New("operation canceled")

// AmbiguousError reports that an identifier matched more than one
// eligible book. It is not terminal: callers with a chooser narrow it
// to a single ID and retry.
type AmbiguousError struct {
	Identifier string
	Matches    []*Book
}

func (e *AmbiguousError) Error() string {
	ids := make([]string, len(e.Matches))
	for i, b := range e.Matches {
		ids[i] = fmt.Sprintf("%d", b.ID)
	}
	return fmt.Sprintf("identifier %q matches %d books (ids: %s)",
		e.Identifier, len(e.Matches), strings.Join(ids, ", "))
}
