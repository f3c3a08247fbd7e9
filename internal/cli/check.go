package cli

import (
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/spf13/cobra"
)

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <noteId>",
		Short: "Report whether you participated in the meeting of a note",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runCheck,
	}
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, log, err := c.newApp(ctx, "cli")
	if err != nil {
		return err
	}
	defer closeApp(ctx, a, log)

	result, err := a.Toolset().Call(ctx, tools.ToolCheckCallParticipation, map[string]any{"noteId": args[0]})
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}
