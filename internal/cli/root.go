// Package cli implements the granola-mcp commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/granola-notes-mcp/internal/adapter"
	"github.com/MKhiriev/granola-notes-mcp/internal/app"
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/models"
	"github.com/spf13/cobra"
)

// cli holds what every command needs to build the application.
type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo

	// noteAdapter replaces the HTTP adapter when set.
	noteAdapter adapter.NoteServiceAdapter
}

// NewRootCmd returns the top-level command. Without a subcommand it serves
// the configured transport.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCmd(&cli{buildInfo: buildInfo})
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "granola-mcp",
		Short:         "MCP server exposing your personal Granola meeting notes",
		Long:          "Serves the get_personal_notes and check_call_participation tools over MCP stdio or HTTP JSON-RPC.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runServe,
	}

	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.newServeCmd(),
		c.newNotesCmd(),
		c.newCheckCmd(),
		c.newVersionCmd(),
	)

	return root
}

// newApp loads configuration and builds the application. The caller closes
// it.
func (c *cli) newApp(ctx context.Context, role string) (*app.App, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger(role, cfg.Log)
	log.Debug().
		Str("transport", cfg.Server.Transport).
		Str("api_url", cfg.Granola.BaseURL).
		Str("user_id", cfg.Granola.UserID).
		Msg("configuration loaded")

	a, err := app.New(ctx, cfg, c.noteAdapter, c.buildInfo, log)
	if err != nil {
		return nil, nil, err
	}

	return a, log, nil
}

func closeApp(ctx context.Context, a *app.App, log *logger.Logger) {
	if err := a.Close(context.WithoutCancel(ctx)); err != nil {
		log.Err(err).Msg("error closing application")
	}
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
