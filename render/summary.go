package render

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasquery/index"
	"github.com/erraggy/oasquery/spec"
)

// defaultTagSample is how many tags the getting-started summary lists before
// truncating to a remainder count.
const defaultTagSample = 10

// TagList renders the document's sorted tag set as newline-separated plain
// text. Empty when no operation declares tags.
func TagList(doc *spec.Document) string {
	return strings.Join(index.Tags(doc), "\n")
}

// RawDocument returns the document's verbatim source text.
func RawDocument(doc *spec.Document) string {
	return string(doc.Raw())
}

// GettingStarted renders an aggregate overview of the API: endpoint counts
// split by authentication requirement, tag and schema counts, version info,
// and a truncated tag sample. tagSample <= 0 uses the default of 10.
//
// This is a reporting view over the endpoint and tag indices; it holds no
// logic beyond counting and truncation.
func GettingStarted(doc *spec.Document, tagSample int) string {
	if tagSample <= 0 {
		tagSample = defaultTagSample
	}

	records := index.Endpoints(doc)
	tags := index.Tags(doc)

	protected := 0
	for _, rec := range records {
		if rec.RequiresAuth {
			protected++
		}
	}
	public := len(records) - protected

	var b strings.Builder
	title, version := "Untitled API", ""
	if doc.Info != nil {
		if doc.Info.Title != "" {
			title = doc.Info.Title
		}
		version = doc.Info.Version
	}
	if version != "" {
		fmt.Fprintf(&b, "# %s (v%s)\n\n", title, version)
	} else {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if doc.Info != nil && doc.Info.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", doc.Info.Description)
	}
	fmt.Fprintf(&b, "OpenAPI version: %s\n", doc.OpenAPI)

	if len(doc.Servers) > 0 {
		b.WriteString("\nBase URLs:\n")
		for _, server := range doc.Servers {
			fmt.Fprintf(&b, "- %s", server.URL)
			if server.Description != "" {
				fmt.Fprintf(&b, " (%s)", server.Description)
			}
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "\nEndpoints: %d total, %d public, %d requiring authentication\n",
		len(records), public, protected)
	fmt.Fprintf(&b, "Schemas: %d\n", doc.SchemaCount())

	fmt.Fprintf(&b, "Tags: %d", len(tags))
	if len(tags) > 0 {
		sample := tags
		remainder := 0
		if len(sample) > tagSample {
			sample = sample[:tagSample]
			remainder = len(tags) - tagSample
		}
		fmt.Fprintf(&b, " - %s", strings.Join(sample, ", "))
		if remainder > 0 {
			fmt.Fprintf(&b, " (+%d more)", remainder)
		}
	}
	b.WriteByte('\n')

	return strings.TrimRight(b.String(), "\n")
}
