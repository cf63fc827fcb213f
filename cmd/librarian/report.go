// Report command prints loan and usage reports.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reportOverdue  bool
	reportBorrowed bool
	reportPopular  bool
	reportUsers    bool
	reportTop      int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print loan and usage reports",
	Long: `Report prints one of four views: overdue loans with accrued
penalties, currently borrowed books, most-borrowed books, or top
borrowers. Exactly one view must be selected.

Example:
  librarian report --overdue
  librarian report --popular --top 5`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportOverdue, "overdue", false, "loans past their due date")
	reportCmd.Flags().BoolVar(&reportBorrowed, "borrowed", false, "currently open loans")
	reportCmd.Flags().BoolVar(&reportPopular, "popular", false, "most-borrowed books")
	reportCmd.Flags().BoolVar(&reportUsers, "users", false, "top borrowers")
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "row limit for --popular and --users")
}

func runReport(cmd *cobra.Command, args []string) error {
	selected := 0
	for _, f := range []bool{reportOverdue, reportBorrowed, reportPopular, reportUsers} {
		if f {
			selected++
		}
	}
	if selected != 1 {
		return fmt.Errorf("select exactly one of --overdue, --borrowed, --popular, --users")
	}

	switch {
	case reportOverdue:
		entries := manager.OverdueLoans()
		if flagJSON {
			return printJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Println("No overdue loans")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("[Loan %d] %q by %s - %s (%s), due %s, %d day(s) overdue, penalty %.2f\n",
				e.Loan.ID, e.Loan.BookTitle, e.Author, e.Loan.UserName, e.Loan.UserID,
				formatDate(e.Loan.DueDate), e.DaysOverdue, e.AccruedPenalty)
		}
	case reportBorrowed:
		loans := manager.ActiveLoans()
		if flagJSON {
			return printJSON(loans)
		}
		if len(loans) == 0 {
			fmt.Println("No active loans")
			return nil
		}
		for _, loan := range loans {
			printLoan(loan)
		}
	case reportPopular:
		books := manager.PopularBooks(reportTop)
		if flagJSON {
			return printJSON(books)
		}
		if len(books) == 0 {
			fmt.Println("No books have been borrowed yet")
			return nil
		}
		for i, book := range books {
			fmt.Printf("%d. %s - %s (%d loans)\n", i+1, book.Title, book.Author, book.LoanCount)
		}
	case reportUsers:
		users := manager.TopBorrowers(reportTop)
		if flagJSON {
			return printJSON(users)
		}
		if len(users) == 0 {
			fmt.Println("No users have borrowed yet")
			return nil
		}
		for i, user := range users {
			fmt.Printf("%d. %s (%s): %d loan(s)\n", i+1, user.Name, user.ID, user.TotalLoans)
		}
	}
	return nil
}
