package main

import (
	"github.com/spf13/cobra"

	"github.com/hhstat/vacstat/partition"
)

var separateOpts struct {
	outDir         string
	dateTimeColumn string
}

var separateCmd = &cobra.Command{
	Use:   "separate <csv>",
	Short: "Split a vacancies table into per-year chunk files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		separated, err := partition.ByYear(args[0], separateOpts.dateTimeColumn, separateOpts.outDir)
		if err != nil {
			return err
		}
		log.Info("Created {} chunks under {}", len(separated.ChunkPaths), separateOpts.outDir)
		for _, path := range separated.ChunkPaths {
			log.Info("  {}", path)
		}
		return nil
	},
}

func init() {
	separateCmd.Flags().StringVar(&separateOpts.outDir, "out-dir", "year_separated", "partition scratch directory")
	separateCmd.Flags().StringVar(&separateOpts.dateTimeColumn, "datetime-column", "published_at", "column the partition year is taken from")
	rootCmd.AddCommand(separateCmd)
}
