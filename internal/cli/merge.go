package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghostoverflow/diaglog/internal/config"
	"github.com/ghostoverflow/diaglog/internal/fswalk"
	"github.com/ghostoverflow/diaglog/internal/report"
)

func runMerge(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	files, err := fswalk.DiscoverLogs(cfg.In, cfg.Glob)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no log files matched %q under %q", cfg.Glob, cfg.In)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	manifest, err := config.LoadManifest(cfg.KindManifest)
	if err != nil {
		return err
	}

	rows, err := report.Merge(files)
	if err != nil {
		return newExitError(ExitCodeMergeFailed, err)
	}

	summary := report.Summarize(len(files), rows, manifest.KnownKinds())
	for _, kind := range summary.UnknownKinds {
		slog.Warn("undocumented diagnostic kind", "kind", kind, "manifest", cfg.KindManifest)
	}

	if cfg.OutCSV != "" {
		if err := fswalk.EnsureParentDir(cfg.OutCSV); err != nil {
			return fmt.Errorf("prepare output path %q: %w", cfg.OutCSV, err)
		}
		if err := report.WriteCSV(cfg.OutCSV, rows); err != nil {
			return newExitError(ExitCodeMergeFailed, fmt.Errorf("write merged log %q: %w", cfg.OutCSV, err))
		}
	}

	if cfg.SummaryJSON != "" {
		logNames := make([]string, 0, len(files))
		for _, f := range files {
			logNames = append(logNames, f.RelPath)
		}
		if err := report.WriteJSON(cfg.SummaryJSON, report.NewJSONReport(summary, logNames)); err != nil {
			return newExitError(ExitCodeMergeFailed, fmt.Errorf("write summary %q: %w", cfg.SummaryJSON, err))
		}
	}

	slog.Info(
		"merge summary",
		"logs", summary.Logs,
		"rows", summary.Rows,
		"unknown_kinds", len(summary.UnknownKinds),
		"out", cfg.OutCSV,
		"summary_json", cfg.SummaryJSON,
	)

	if cfg.Strict && len(summary.UnknownKinds) > 0 {
		return newExitError(ExitCodeKindCheckFailed,
			fmt.Errorf("merge finished with %d undocumented kinds", len(summary.UnknownKinds)))
	}

	return nil
}
