package cli

import (
	"github.com/erraggy/oasquery/internal/mcpserver"
	"github.com/spf13/cobra"
)

func ServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the spec as MCP tools over stdio",
		Long: `Starts an MCP (Model Context Protocol) server on stdin/stdout, exposing
the configured spec source as query tools for AI agents. The source comes
from --spec or the OASQUERY_SPEC environment variable and is re-read on
every tool call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			location, _ := cmd.Flags().GetString("spec")
			return mcpserver.Run(cmd.Context(), location)
		},
	}
}
