// Import command loads books from a CSV file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import books from a CSV file",
	Long: `Import loads books from a CSV file with a header row. Rows whose
ISBN already exists and rows missing a title or author are skipped.

Example:
  librarian import catalog.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	summary, err := manager.ImportBooksCSV(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(summary)
	}
	fmt.Printf("Imported %d book(s), skipped %d row(s)\n", summary.Imported, summary.Skipped)
	return nil
}
