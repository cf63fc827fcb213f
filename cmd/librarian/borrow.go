// Borrow command opens a loan.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	borrowUserID string
	borrowDays   int
)

var borrowCmd = &cobra.Command{
	Use:   "borrow <identifier>",
	Short: "Lend a book to a user",
	Long: `Borrow lends a book, identified by ID, ISBN, or title, to a
registered user. When the title matches several available copies the
command lists them and asks which ID to lend. The loan duration
defaults to the configured default_loan_days.

Example:
  librarian borrow "Dune" --user-id U001
  librarian borrow 978-0134190440 --user-id U001 --days 21`,
	Args: cobra.ExactArgs(1),
	RunE: runBorrow,
}

func init() {
	borrowCmd.Flags().StringVar(&borrowUserID, "user-id", "", "borrower's user ID (required)")
	borrowCmd.Flags().IntVar(&borrowDays, "days", 0, "loan duration in days (default from config)")
	_ = borrowCmd.MarkFlagRequired("user-id")
}

func runBorrow(cmd *cobra.Command, args []string) error {
	days := borrowDays
	if !cmd.Flags().Changed("days") {
		days = cfg.DefaultLoanDays
	}

	loan, err := manager.Borrow(args[0], borrowUserID, days)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(loan)
	}
	fmt.Printf("Lent %q to %s, due %s\n", loan.BookTitle, loan.UserName, formatDate(loan.DueDate))
	return nil
}
