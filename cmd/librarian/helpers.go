// Output helpers shared by the librarian subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"librarian/pkg/types"
)

// printJSON writes v as indented JSON, used by every command when the
// global --json flag is set.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func printBook(book *types.Book) {
	year := types.NoValue
	if book.Year != nil {
		year = fmt.Sprintf("%d", *book.Year)
	}
	fmt.Printf("[ID: %d] %s - %s (%s) [%s] %s\n",
		book.ID, book.Title, book.Author, year, book.Category, book.Status)
}

func printUser(user *types.User) {
	fmt.Printf("[%s] %s <%s> loans: %d active, %d total, penalties: %.2f [%s]\n",
		user.ID, user.Name, user.Email, user.ActiveLoans, user.TotalLoans, user.TotalPenalties, user.Status)
}

func printLoan(loan *types.Loan) {
	fmt.Printf("[Loan %d] %q to %s (%s), due %s\n",
		loan.ID, loan.BookTitle, loan.UserName, loan.UserID, formatDate(loan.DueDate))
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// normalizeBookStatus maps a user-supplied --status value onto the
// stored status constants. An empty value means no filter.
func normalizeBookStatus(value string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case types.BookAvailable:
		return types.BookAvailable, nil
	case types.BookBorrowed:
		return types.BookBorrowed, nil
	default:
		return "", fmt.Errorf("unknown status %q (want available or borrowed)", value)
	}
}
