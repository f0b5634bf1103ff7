// Package main provides the entry point for the citypremium CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/citypremium/internal/config"
	"github.com/nao1215/citypremium/internal/dataset"
	"github.com/nao1215/citypremium/internal/log"
	"github.com/nao1215/citypremium/internal/model"
	"github.com/nao1215/citypremium/internal/pipeline"
)

// NewRootCmd creates the root command for citypremium.
// Running it without a subcommand generates the report artifacts.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "citypremium",
		Short: "Chart the city salary premium over the national average",
		Long: `citypremium synthesizes a reproducible salary dataset for ten US metro areas
and three roles, then compares the top five cities for one role with the
national average of that role.

It writes three files to the output directory:
  city_premium_summary.csv   top cities with count, averages and premium
  city_premium_dumbbell.png  dumbbell chart (220 DPI)
  city_premium_dumbbell.svg  the same chart as vector graphics

Examples:
  # Default role, write to /out
  citypremium

  # Another role and output directory
  citypremium --role "Data Scientist" --out ./out`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().String("role", config.DefaultRole, "Role to analyze")
	cmd.Flags().String("out", config.DefaultOutputDir, "Output directory (created if missing)")

	// Add subcommands
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewRolesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd generates the report artifacts.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	def, err := dataset.Default()
	if err != nil {
		return err
	}

	run := model.NewRun(cfg.Role, cfg.OutputDir, cfg.TopN)
	if err := pipeline.NewReportPipeline(def, logger).Execute(context.Background(), run); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\nWrote: %s\n", run.PNGPath, run.SVGPath)
	return nil
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Role, err = cmd.Flags().GetString("role")
	if err != nil {
		return nil, err
	}

	cfg.OutputDir, err = cmd.Flags().GetString("out")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
