// Stats command prints the collection-wide summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog statistics",
	Long: `Stats prints a snapshot of the whole collection: inventory counts,
loan activity, return punctuality, and the most popular books,
categories, and borrowers.

Example:
  librarian stats
  librarian stats --top 5`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 3, "row limit for the popular-books list")
}

func runStats(cmd *cobra.Command, args []string) error {
	s := manager.ComputeStatistics(statsTop)

	if flagJSON {
		return printJSON(s)
	}

	fmt.Println("Library statistics")
	fmt.Printf("  Books: %d total, %d available, %d borrowed\n", s.TotalBooks, s.AvailableBooks, s.BorrowedBooks)
	fmt.Printf("  Categories: %d, unique authors: %d\n", s.Categories, s.UniqueAuthors)
	fmt.Printf("  Users: %d total, %d with active loans\n", s.TotalUsers, s.UsersWithActiveLoans)
	fmt.Printf("  Loans: %d total, %d open, %d overdue\n", s.TotalLoans, s.OpenLoans, s.OverdueLoans)
	fmt.Printf("  On-time return rate: %.1f%%\n", s.OnTimeReturnRate)
	fmt.Printf("  Penalties collected: %.2f\n", s.PenaltiesCollected)

	if len(s.TopBooks) > 0 {
		fmt.Println("  Most borrowed:")
		for i, book := range s.TopBooks {
			fmt.Printf("    %d. %s - %s (%d loans)\n", i+1, book.Title, book.Author, book.LoanCount)
		}
	}
	if len(s.TopCategories) > 0 {
		fmt.Println("  Top categories:")
		for i, cat := range s.TopCategories {
			fmt.Printf("    %d. %s (%d books)\n", i+1, cat.Category, cat.Count)
		}
	}
	if len(s.TopUsers) > 0 {
		fmt.Println("  Top borrowers:")
		for i, user := range s.TopUsers {
			fmt.Printf("    %d. %s (%s): %d loan(s)\n", i+1, user.Name, user.ID, user.TotalLoans)
		}
	}
	return nil
}
