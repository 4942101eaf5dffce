// SPDX-License-Identifier: Apache-2.0

// Command corpusfilter streams a JSONL tweet corpus and keeps every record
// that mentions at least one Kurdish-issue keyword and at least one Islam
// keyword, either in its matched_keywords field or in the tweet text itself.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbkizil/cssm501/internal/filter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := filter.Config{}
	cmd := &cobra.Command{
		Use:   "corpusfilter",
		Short: "Filter a JSONL corpus by Kurdish-issue and Islam keyword co-occurrence",
		Long: "corpusfilter reads a newline-delimited JSON corpus, evaluates each record\n" +
			"against two compiled-in keyword sets, and writes every record that matches\n" +
			"both sets verbatim to the output file. Malformed lines are skipped and\n" +
			"counted; the run only aborts on I/O errors.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg.ShowProgress = true
			logger.Info("starting filter run",
				zap.String("input", cfg.InputPath),
				zap.String("output", cfg.OutputPath),
				zap.Int("workers", cfg.Workers),
				zap.Int("batch_size", cfg.BatchSize),
			)

			summary, err := filter.Run(cmd.Context(), cfg)
			if err != nil {
				logger.Error("filter run failed", zap.Error(err))
				return err
			}

			logger.Info("filter run complete",
				zap.Int64("processed", summary.Processed),
				zap.Int64("kept", summary.Kept),
				zap.Int64("malformed", summary.Malformed),
				zap.String("output", cfg.OutputPath),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.InputPath, "input", "i", "kurdish_issue_data.jsonl", "input JSONL file")
	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "filtered_kurdish_islam_v2.jsonl", "output JSONL file")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", filter.DefaultWorkers, "number of evaluation workers")
	cmd.Flags().IntVar(&cfg.BatchSize, "batch-size", filter.DefaultBatchSize, "lines dispatched to a worker at a time")
	return cmd
}
