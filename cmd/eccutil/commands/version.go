package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of eccutil, set at build time with -ldflags.
var Version = "dev"

func getVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Command to show current binary version",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), Version)
		},
	}

	return cmd
}
