package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/citypremium/internal/analysis"
	"github.com/nao1215/citypremium/internal/config"
	"github.com/nao1215/citypremium/internal/dataset"
	"github.com/nao1215/citypremium/internal/report"
	"github.com/nao1215/citypremium/internal/synth"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the top-city premium table as Markdown",
		Long: `Summary prints the same ranking that the CSV artifact contains, formatted
as a Markdown document on stdout. No files are written.

Examples:
  # Default role
  citypremium summary

  # Another role
  citypremium summary --role "GenAI Developer"`,
		Args: cobra.NoArgs,
		RunE: runSummaryCmd,
	}

	cmd.Flags().String("role", config.DefaultRole, "Role to analyze")

	return cmd
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	var err error
	cfg.Role, err = cmd.Flags().GetString("role")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	def, err := dataset.Default()
	if err != nil {
		return err
	}

	summary, err := analysis.Summarize(synth.Generate(def, def.Seed), cfg.Role, cfg.TopN)
	if err != nil {
		return err
	}

	_, err = report.NewMarkdownWriter(cmd.OutOrStdout()).Write(summary)
	return err
}
