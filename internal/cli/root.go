// Package cli wires the oasquery commands. The same query engine backs
// both the terminal commands and the MCP server started by serve.
package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/oasquery"
	"github.com/erraggy/oasquery/internal/source"
	"github.com/erraggy/oasquery/spec"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "oasquery",
		Short:   "oasquery - query a REST API's OpenAPI description",
		Version: oasquery.Version(),

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("spec", "", "Spec source: file path or http(s) URL (overrides OASQUERY_SPEC)")

	root.AddCommand(
		ServeCommand(),
		EndpointsCommand(),
		EndpointCommand(),
		SchemaCommand(),
		TagsCommand(),
		SummaryCommand(),
		RawCommand(),
	)

	return root
}

// loadDoc resolves the spec source from --spec or OASQUERY_SPEC and fetches
// the document fresh. Terminal invocations fetch with a plain HTTP client:
// the operator typed the URL, so the SSRF guard the MCP server applies to
// configured sources is not needed here.
func loadDoc(cmd *cobra.Command) (*spec.Document, error) {
	location, _ := cmd.Flags().GetString("spec")
	if location == "" {
		location = os.Getenv("OASQUERY_SPEC")
	}
	src, err := source.Detect(location)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 30 * time.Second}
	doc, err := src.Fetch(cmd.Context(), client, source.DefaultMaxSize)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	return doc, nil
}
