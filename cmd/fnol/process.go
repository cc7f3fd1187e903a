package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fnolrouter/internal/domain"
)

func newProcessCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "process FILE",
		Short: "Process a single FNOL document",
		Long: `Process one FNOL document, print a summary and save the result as JSON.

Examples:
  # Writes fnol_theft_claim_result.json in the current directory
  fnol process txt_files/fnol_theft_claim.txt

  # Choose the output file
  fnol process -o result.json data/loss_notice.pdf

  # Read from S3 (requires FNOL_S3_ENABLED=true)
  fnol process s3://claims-inbox/fnol_small_claim.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			out := cmd.OutOrStdout()

			report, err := a.svc.ProcessFile(cmd.Context(), source)
			if err != nil {
				if errors.Is(err, domain.ErrFileNotFound) {
					return fmt.Errorf("file not found - %s", source)
				}
				return err
			}

			fmt.Fprintf(out, "Processing: %s\n", source)
			fmt.Fprintln(out, strings.Repeat("-", separatorWidth))
			printDetail(out, &report.Result)
			for _, msg := range report.Inconsistencies {
				fmt.Fprintf(out, "Warning: %s\n", msg)
			}

			if output == "" {
				output = resultFileName(source)
			}
			if err := writeJSON(output, report.Result); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nResult saved to: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "result JSON path (default <stem>_result.json)")
	return cmd
}
