// Package main provides the librarian CLI, a single-operator library
// catalog manager over a local flat-file store.
package main

import (
	"errors"
	"fmt"
	"os"

	"librarian/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the process exit code: catalog and input
// errors are user errors, everything else (store I/O, config) is a
// system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrBookNotFound, types.ErrUserNotFound,
		types.ErrDuplicateISBN, types.ErrDuplicateBook, types.ErrDuplicateUser,
		types.ErrInvalidYear, types.ErrInvalidEmail, types.ErrInvalidDuration,
		types.ErrBookUnavailable, types.ErrBookBorrowed, types.ErrUserInactive,
		types.ErrHasActiveLoans, types.ErrNoActiveLoan, types.ErrCanceled,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	var ambiguous *types.AmbiguousError
	if errors.As(err, &ambiguous) {
		return exitUserError
	}
	return exitSysError
}
