// Add-user command registers a borrower.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addUserID    string
	addUserEmail string
)

var addUserCmd = &cobra.Command{
	Use:   "add-user <name>",
	Short: "Register a borrower",
	Long: `Add-user registers a borrower under a caller-chosen unique ID.

Example:
  librarian add-user "Ada Lovelace" --id U001 --email ada@example.org`,
	Args: cobra.ExactArgs(1),
	RunE: runAddUser,
}

func init() {
	addUserCmd.Flags().StringVar(&addUserID, "id", "", "unique user ID (required)")
	addUserCmd.Flags().StringVar(&addUserEmail, "email", "", "email address (optional)")
	_ = addUserCmd.MarkFlagRequired("id")
}

func runAddUser(cmd *cobra.Command, args []string) error {
	user, err := manager.AddUser(args[0], addUserID, addUserEmail)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(user)
	}
	fmt.Printf("Registered user [%s] %s\n", user.ID, user.Name)
	return nil
}
