// Search command finds books by field substring.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarian/internal/library"
)

var searchField string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the book catalog",
	Long: `Search finds books whose chosen field contains the query,
case-insensitively.

Example:
  librarian search dune
  librarian search herbert --field author
  librarian search fiction --field category`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", library.SearchTitle, "field to search: title, author, isbn, or category")
}

func runSearch(cmd *cobra.Command, args []string) error {
	books, err := manager.SearchBooks(args[0], searchField)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(books)
	}
	if len(books) == 0 {
		fmt.Printf("No books match %q\n", args[0])
		return nil
	}
	for _, book := range books {
		printBook(book)
	}
	return nil
}
