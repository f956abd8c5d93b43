package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "edgequiz", version)
		if check, _ := cmd.Flags().GetBool("check"); check {
			checkLatest(cmd)
		}
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Also check for a newer release")
}
