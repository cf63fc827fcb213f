// Package types defines the Book, User, Loan and Collection entities,
// the store configuration, and the standard errors for the librarian
// catalog system.
package types
