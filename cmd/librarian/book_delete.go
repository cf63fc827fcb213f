// Delete-book command removes a book from the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteBookCmd = &cobra.Command{
	Use:   "delete-book <identifier>",
	Short: "Remove a book from the catalog",
	Long: `Delete-book permanently removes a book identified by ID, ISBN, or
title. Borrowed books cannot be deleted; their loan history survives
and keeps referencing the removed ID.

Example:
  librarian delete-book 3
  librarian delete-book "Dune"`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteBook,
}

func runDeleteBook(cmd *cobra.Command, args []string) error {
	book, err := manager.DeleteBook(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(book)
	}
	fmt.Printf("Deleted book [ID: %d] %q by %s\n", book.ID, book.Title, book.Author)
	return nil
}
