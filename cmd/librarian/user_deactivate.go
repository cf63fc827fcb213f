// Delete-user command deactivates a borrower.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <id>",
	Short: "Deactivate a borrower",
	Long: `Delete-user deactivates a borrower rather than removing them, so
loan history stays intact. Users with open loans cannot be
deactivated. The user can be restored later with reactivate-user.

Example:
  librarian delete-user U001`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteUser,
}

func runDeleteUser(cmd *cobra.Command, args []string) error {
	user, changed, err := manager.DeactivateUser(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(user)
	}
	if !changed {
		fmt.Printf("User [%s] %s is already inactive\n", user.ID, user.Name)
		return nil
	}
	fmt.Printf("Deactivated user [%s] %s\n", user.ID, user.Name)
	return nil
}
