// Add-book command registers a new catalog entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarian/internal/library"
)

var (
	addBookISBN     string
	addBookCategory string
	addBookYear     int
)

var addBookCmd = &cobra.Command{
	Use:   "add-book <title> <author>",
	Short: "Add a book to the catalog",
	Long: `Add-book registers a new book. Without an ISBN the title+author pair
must be unique (case-insensitive); with one, the ISBN must be unique.

Example:
  librarian add-book "The Go Programming Language" "Donovan" --isbn 978-0134190440 --year 2015
  librarian add-book "Dune" "Herbert" --category "Science Fiction"`,
	Args: cobra.ExactArgs(2),
	RunE: runAddBook,
}

func init() {
	addBookCmd.Flags().StringVar(&addBookISBN, "isbn", "", "ISBN (optional, must be unique)")
	addBookCmd.Flags().StringVar(&addBookCategory, "category", "", "category (default: Uncategorized)")
	addBookCmd.Flags().IntVar(&addBookYear, "year", 0, "publication year (optional)")
}

func runAddBook(cmd *cobra.Command, args []string) error {
	params := library.BookParams{
		Title:    args[0],
		Author:   args[1],
		ISBN:     addBookISBN,
		Category: addBookCategory,
	}
	if cmd.Flags().Changed("year") {
		params.Year = &addBookYear
	}

	book, err := manager.AddBook(params)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(book)
	}
	fmt.Printf("Added book [ID: %d] %q by %s\n", book.ID, book.Title, book.Author)
	return nil
}
