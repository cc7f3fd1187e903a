package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/report"
	"fnolrouter/internal/service"
)

type batchOptions struct {
	dir        string
	out        string
	outDir     string
	reportPath string
	perFile    bool
}

func newBatchCmd(a *app) *cobra.Command {
	opts := batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [PATH...]",
		Short: "Process several FNOL documents in one run",
		Long: `Process documents one after another and save all results to one JSON array.
Missing or unreadable sources are reported and skipped.

Examples:
  # Every .txt and .pdf directly inside txt_files/
  fnol batch --dir txt_files

  # Explicit files, one result file each, plus a spreadsheet
  fnol batch --per-file --report claims.xlsx a.txt b.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := append([]string(nil), args...)
			if opts.dir != "" {
				found, err := service.DiscoverDocuments(opts.dir)
				if err != nil {
					return err
				}
				sources = append(sources, found...)
			}
			if len(sources) == 0 {
				return fmt.Errorf("no documents given: pass paths or --dir")
			}

			var format report.Format
			if opts.reportPath != "" {
				f, err := report.FormatFor(opts.reportPath)
				if err != nil {
					return err
				}
				format = f
			}

			runID := uuid.New()
			logger := a.logger.With(zap.String("run_id", runID.String()))
			logger.Info("batch started", zap.Int("documents", len(sources)))

			out := cmd.OutOrStdout()
			items := service.ProcessBatch(cmd.Context(), a.svc, sources, logger)
			results := make([]domain.ProcessingResult, 0, len(items))
			for _, it := range items {
				fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", separatorWidth))
				fmt.Fprintf(out, "PROCESSING: %s\n", it.Source)
				fmt.Fprintln(out, strings.Repeat("=", separatorWidth))
				if it.Err != nil {
					fmt.Fprintf(out, "Skipped: %v\n", it.Err)
					continue
				}
				printSummary(out, &it.Report.Result)
				results = append(results, it.Report.Result)

				if opts.perFile {
					path := filepath.Join(opts.outDir, resultFileName(it.Source))
					if err := writeJSON(path, it.Report.Result); err != nil {
						return err
					}
				}
			}

			if len(results) == 0 {
				return fmt.Errorf("none of the %d documents could be processed", len(sources))
			}
			if err := writeJSON(opts.out, results); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nAll results saved to: %s\n", opts.out)

			if opts.reportPath != "" {
				if err := writeReport(opts.reportPath, format, service.Reports(items)); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report saved to: %s\n", opts.reportPath)
			}

			logger.Info("batch finished",
				zap.Int("processed", len(results)),
				zap.Int("skipped", len(items)-len(results)),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "also process every supported document in this directory")
	cmd.Flags().StringVar(&opts.out, "out", "all_results.json", "aggregate results JSON path")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "directory for per-file results")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "also write a .csv or .xlsx report")
	cmd.Flags().BoolVar(&opts.perFile, "per-file", false, "write <stem>_result.json for each document")
	return cmd
}

func writeReport(path string, format report.Format, reports []*domain.ClaimReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.Write(f, format, reports); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
