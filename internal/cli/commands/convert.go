// Package commands implements the facadex subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/facadex-go/facadex"
	"github.com/geoknoesis/facadex-go/internal/cli/config"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var (
		fromFlag string
		toFlag   string
		outFlag  string
	)

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert an XML, JSON, or CSV file to RDF",
		Long: `Convert one XML, JSON, or CSV document into a schema-less RDF graph.

The input is a file path, or "-" to read standard input. The source format
is taken from --from, falling back to the input file extension. The result
is written to stdout, or to the file given with --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			if cfg == nil {
				cfg = &config.Config{Output: config.DefaultOutput}
			}
			logger := config.GetLogger(cmd.Context())
			input := args[0]

			from := fromFlag
			if from == "" {
				from = cfg.Format
			}
			format, err := resolveSourceFormat(from, input)
			if err != nil {
				return err
			}

			to := toFlag
			if to == "" {
				to = cfg.Output
			}
			out, ok := facadex.ParseOutputFormat(to)
			if !ok {
				return fmt.Errorf("unknown output format %q (want turtle, ntriples, or jsonld)", to)
			}

			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			logger.Debug("converting",
				"input", input,
				"format", format,
				"output", out,
				"bytes", len(data))

			result, err := facadex.ConvertTo(format, data, out,
				facadex.OptMaxDepth(cfg.MaxDepth),
				facadex.OptMaxInputBytes(cfg.MaxInputBytes))
			if err != nil {
				logger.Error("conversion failed",
					"input", input,
					"code", facadex.Code(err),
					"error", err)
				return err
			}

			if outFlag == "" || outFlag == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), result)
				return err
			}
			if err := os.WriteFile(outFlag, []byte(result), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Debug("wrote output", "path", outFlag, "bytes", len(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFlag, "from", "f", "", "Source format (xml|json|csv); default: input file extension")
	cmd.Flags().StringVarP(&toFlag, "to", "t", "", "Output serialization (turtle|ntriples|jsonld)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file (default: stdout)")

	_ = cmd.RegisterFlagCompletionFunc("from", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"xml", "json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("to", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"turtle", "ntriples", "jsonld"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func resolveSourceFormat(declared, input string) (facadex.SourceFormat, error) {
	if declared != "" {
		format, ok := facadex.ParseSourceFormat(declared)
		if !ok {
			return "", fmt.Errorf("unknown source format %q (want xml, json, or csv)", declared)
		}
		return format, nil
	}
	if input == "-" {
		return "", fmt.Errorf("reading from stdin requires --from")
	}
	format, ok := facadex.SourceFormatFromPath(input)
	if !ok {
		return "", fmt.Errorf("cannot infer source format from %q; use --from", input)
	}
	return format, nil
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
