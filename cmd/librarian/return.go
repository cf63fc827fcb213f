// Return command closes a loan.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var returnUserID string

var returnCmd = &cobra.Command{
	Use:   "return <identifier>",
	Short: "Return a borrowed book",
	Long: `Return closes the active loan for a book, identified by ID, ISBN,
or title, held by the given user. Overdue returns are charged the
configured penalty per whole day past the due date.

Example:
  librarian return "Dune" --user-id U001`,
	Args: cobra.ExactArgs(1),
	RunE: runReturn,
}

func init() {
	returnCmd.Flags().StringVar(&returnUserID, "user-id", "", "borrower's user ID (required)")
	_ = returnCmd.MarkFlagRequired("user-id")
}

func runReturn(cmd *cobra.Command, args []string) error {
	loan, err := manager.Return(args[0], returnUserID)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(loan)
	}
	if loan.Penalty > 0 {
		fmt.Printf("Returned %q from %s with a %.2f overdue penalty\n", loan.BookTitle, loan.UserName, loan.Penalty)
	} else {
		fmt.Printf("Returned %q from %s on time\n", loan.BookTitle, loan.UserName)
	}
	return nil
}
