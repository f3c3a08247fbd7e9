package cli

import (
	"fmt"

	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *cli) newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print your personal notes as JSON",
		Args:  cobra.NoArgs,
		RunE:  c.runNotes,
	}

	cmd.Flags().Int("days", 0, "Look-back window in days (default from config)")
	cmd.Flags().IntP("limit", "l", 0, "Maximum number of notes (default from config)")

	return cmd
}

func (c *cli) runNotes(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	args, err := notesArgs(cmd.Flags())
	if err != nil {
		return err
	}

	a, log, err := c.newApp(ctx, "cli")
	if err != nil {
		return err
	}
	defer closeApp(ctx, a, log)

	result, err := a.Toolset().Call(ctx, tools.ToolGetPersonalNotes, args)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}

// notesArgs passes only the flags given on the command line, so omitted ones
// fall back to the configured defaults.
func notesArgs(fs *pflag.FlagSet) (map[string]any, error) {
	args := map[string]any{}
	for _, name := range []string{"days", "limit"} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetInt(name)
		if err != nil {
			return nil, fmt.Errorf("read --%s: %w", name, err)
		}
		args[name] = v
	}
	return args, nil
}
