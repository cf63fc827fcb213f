// List command prints books or users.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listType   string
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List books or users",
	Long: `List prints the catalog. Books can be filtered by status.

Example:
  librarian list
  librarian list --status borrowed
  librarian list --type users`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "books", "what to list: books or users")
	listCmd.Flags().StringVar(&listStatus, "status", "", "book status filter: available or borrowed")
}

func runList(cmd *cobra.Command, args []string) error {
	switch listType {
	case "books":
		status, err := normalizeBookStatus(listStatus)
		if err != nil {
			return err
		}
		books := manager.ListBooks(status)
		if flagJSON {
			return printJSON(books)
		}
		if len(books) == 0 {
			fmt.Println("No books found")
			return nil
		}
		for _, book := range books {
			printBook(book)
		}
	case "users":
		users := manager.ListUsers()
		if flagJSON {
			return printJSON(users)
		}
		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}
		for _, user := range users {
			printUser(user)
		}
	default:
		return fmt.Errorf("unknown list type %q (want books or users)", listType)
	}
	return nil
}
