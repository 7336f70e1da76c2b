package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported source and output formats",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Source formats:")
			_, _ = fmt.Fprintln(out, "  xml    XML document (.xml)")
			_, _ = fmt.Fprintln(out, "  json   JSON document (.json)")
			_, _ = fmt.Fprintln(out, "  csv    Tabular data with a header row (.csv)")
			_, _ = fmt.Fprintln(out, "Output serializations:")
			_, _ = fmt.Fprintln(out, "  turtle     Turtle (default)")
			_, _ = fmt.Fprintln(out, "  ntriples   N-Triples")
			_, _ = fmt.Fprintln(out, "  jsonld     JSON-LD")
		},
	}
}
