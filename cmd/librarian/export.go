// Export command writes the catalog as CSV.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <destination>",
	Short: "Export the catalog to CSV",
	Long: `Export writes the catalog to CSV. A destination ending in .csv
receives the book catalog only; any other destination is treated as a
backup directory and receives the catalog, users, active loans, full
loan history, and a manifest.json describing the export.

Example:
  librarian export catalog.csv
  librarian export backups/2026-08-31`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	summary, err := manager.ExportCSV(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(summary)
	}
	if summary.SingleFile {
		fmt.Printf("Exported %d book(s) to %s\n", summary.Books, summary.Files[0])
		return nil
	}
	fmt.Printf("Exported backup %s to %s\n", summary.ManifestID, summary.Directory)
	fmt.Printf("  %d book(s), %d user(s), %d active loan(s), %d loan record(s)\n",
		summary.Books, summary.Users, summary.ActiveLoans, summary.LoanHistory)
	return nil
}
