package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghostoverflow/diaglog/internal/config"
	"github.com/ghostoverflow/diaglog/internal/logging"
)

// NewRootCmd wires CLI flags to configuration and executes the merge.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "diaglog",
		Short:         "Merge per-unit diagnostic CSV logs into combined reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Configure(cfg.Verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.In, "in", "", "Input root directory containing per-unit CSV logs")
	cmd.Flags().StringVar(&cfg.Glob, "glob", cfg.Glob, "Glob pattern relative to --in (supports **)")
	cmd.Flags().StringVar(&cfg.OutCSV, "out", "", "Merged CSV output path")
	cmd.Flags().StringVar(&cfg.SummaryJSON, "summary-json", "", "Optional JSON summary output path")
	cmd.Flags().StringVar(&cfg.KindManifest, "kinds", "", "Optional YAML manifest of documented diagnostic kinds")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail when a log row carries an undocumented kind")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")

	_ = cmd.MarkFlagRequired("in")

	return cmd
}
