package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/prdkanban/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of prdkanban",
	// Printing the version never depends on the config file.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
