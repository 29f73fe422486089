package cli

import (
	"github.com/erraggy/oasquery/index"
	"github.com/erraggy/oasquery/render"
	"github.com/spf13/cobra"
)

func EndpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List or search endpoints, grouped by tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			query, _ := cmd.Flags().GetString("query")
			tag, _ := cmd.Flags().GetString("tag")
			method, _ := cmd.Flags().GetString("method")
			records := index.Search(index.Endpoints(doc), index.Filter{
				Query:  query,
				Tag:    tag,
				Method: method,
			})
			cmd.Println(render.EndpointList(records))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("query", "q", "", "Case-insensitive substring over path, summary, and description")
	flags.StringP("tag", "t", "", "Exact tag name (case-sensitive)")
	flags.StringP("method", "m", "", "HTTP method (case-insensitive)")

	return cmd
}

func EndpointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint METHOD PATH",
		Short: "Show the full contract of one endpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			cmd.Println(render.EndpointDetails(doc, args[0], args[1]))
			return nil
		},
	}
}

func SchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema NAME",
		Short: "Show a named component schema as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			cmd.Println(render.SchemaDetails(doc, args[0]))
			return nil
		},
	}
}

func TagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag used by at least one operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			tags := render.TagList(doc)
			if tags == "" {
				tags = "No tags are declared in this specification."
			}
			cmd.Println(tags)
			return nil
		},
	}
}

func SummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a getting-started overview of the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			tagSample, _ := cmd.Flags().GetInt("tag-sample")
			cmd.Println(render.GettingStarted(doc, tagSample))
			return nil
		},
	}

	cmd.Flags().Int("tag-sample", 0, "Tags listed before truncation (default 10)")

	return cmd
}

func RawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "raw",
		Short: "Print the spec document exactly as its source provides it",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDoc(cmd)
			if err != nil {
				return err
			}
			cmd.Print(render.RawDocument(doc))
			return nil
		},
	}
}
