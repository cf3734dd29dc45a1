package cmd

import (
	"fmt"

	"github.com/philipparndt/gogeo/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gogeo "+version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
