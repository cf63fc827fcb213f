// Version command for the librarian CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI release version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the librarian version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("librarian", Version)
	},
}
