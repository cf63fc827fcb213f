// Reactivate-user command restores a deactivated borrower.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reactivateUserCmd = &cobra.Command{
	Use:   "reactivate-user <id>",
	Short: "Restore a deactivated borrower",
	Long: `Reactivate-user restores a borrower deactivated with delete-user.
Reactivating an already-active user is a no-op.

Example:
  librarian reactivate-user U001`,
	Args: cobra.ExactArgs(1),
	RunE: runReactivateUser,
}

func runReactivateUser(cmd *cobra.Command, args []string) error {
	user, changed, err := manager.ReactivateUser(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(user)
	}
	if !changed {
		fmt.Printf("User [%s] %s is already active\n", user.ID, user.Name)
		return nil
	}
	fmt.Printf("Reactivated user [%s] %s\n", user.ID, user.Name)
	return nil
}
