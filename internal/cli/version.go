package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(w, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(w, "Build commit: %s\n", c.buildInfo.BuildCommit())
		},
	}
}
