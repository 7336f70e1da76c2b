// Package cli provides the command-line interface for facadex.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/facadex-go/facadex"
	"github.com/geoknoesis/facadex-go/internal/cli/commands"
	"github.com/geoknoesis/facadex-go/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// Exit codes by error category.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitParse    = 2
	ExitEncoding = 3
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "facadex",
		Short: "facadex - schema-less file-to-RDF converter",
		Long: `facadex converts XML, JSON, and CSV documents into schema-less RDF
graphs following the Facade-X meta-model, without requiring an upfront
ontology. Output is deterministic Turtle, N-Triples, or JSON-LD.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})).With("run_id", uuid.NewString())

			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./facadex.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum input nesting depth (0 = default, negative disables)")
	rootCmd.PersistentFlags().Int64("max-input-bytes", 0, "Maximum input size in bytes (0 = default, negative disables)")

	// Add subcommands
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewFormatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return ExitOK
}

// exitCode maps an error to an exit code by its conversion category.
func exitCode(err error) int {
	var parseErr *facadex.ParseError
	var encErr *facadex.EncodingError
	switch {
	case errors.As(err, &encErr):
		return ExitEncoding
	case errors.As(err, &parseErr):
		return ExitParse
	default:
		return ExitUsage
	}
}
