package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hhstat/vacstat"
	"github.com/hhstat/vacstat/internal/util"
	"github.com/hhstat/vacstat/report"
)

var reportOpts struct {
	profName            string
	strategy            string
	format              string
	out                 string
	partitionDir        string
	dateTimeColumn      string
	concurrency         int
	timeout             time.Duration
	skipUnknownCurrency bool
}

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Compute statistics and render them as a table, JSON or a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := util.ContextWithSignal(context.Background(), os.Interrupt)
		defer cancel()

		opt := vacstat.DefaultOptions()
		opt.Strategy = vacstat.Strategy(reportOpts.strategy)
		opt.PartitionDir = reportOpts.partitionDir
		opt.DateTimeColumn = reportOpts.dateTimeColumn
		opt.Timeout = reportOpts.timeout
		opt.SkipUnknownCurrency = reportOpts.skipUnknownCurrency
		if reportOpts.concurrency > 0 {
			opt.Concurrency = reportOpts.concurrency
		}

		statistics, err := vacstat.Compute(ctx, args[0], reportOpts.profName, opt)
		if err != nil {
			return err
		}
		result := statistics.Report()

		switch reportOpts.format {
		case "table":
			report.RenderTable(os.Stdout, result)
			return nil
		case "json":
			if reportOpts.out == "" {
				return report.WriteJSON(os.Stdout, result)
			}
			f, err := os.Create(reportOpts.out)
			if err != nil {
				return errors.Wrap(err, "create output file")
			}
			defer f.Close()
			return report.WriteJSON(f, result)
		case "xlsx":
			if reportOpts.out == "" {
				return errors.New("--out is required for xlsx output")
			}
			return report.WriteXLSX(reportOpts.out, result)
		default:
			return errors.Errorf("unknown format %q", reportOpts.format)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.profName, "prof", "", "profession filter (substring of the vacancy title)")
	reportCmd.Flags().StringVar(&reportOpts.strategy, "strategy", "pool", "aggregation strategy: sequential, pool, futures or columnar")
	reportCmd.Flags().StringVar(&reportOpts.format, "format", "table", "output format: table, json or xlsx")
	reportCmd.Flags().StringVar(&reportOpts.out, "out", "", "output file (stdout when empty)")
	reportCmd.Flags().StringVar(&reportOpts.partitionDir, "partition-dir", "year_separated", "partition scratch directory")
	reportCmd.Flags().StringVar(&reportOpts.dateTimeColumn, "datetime-column", "published_at", "column the partition year is taken from")
	reportCmd.Flags().IntVar(&reportOpts.concurrency, "concurrency", 0, "number of chunk workers (0 means number of CPUs)")
	reportCmd.Flags().DurationVar(&reportOpts.timeout, "timeout", 0, "bound for the whole run (0 waits indefinitely)")
	reportCmd.Flags().BoolVar(&reportOpts.skipUnknownCurrency, "skip-unknown-currency", false, "drop records with an unknown currency instead of failing")
	must(reportCmd.MarkFlagRequired("prof"))
	rootCmd.AddCommand(reportCmd)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
