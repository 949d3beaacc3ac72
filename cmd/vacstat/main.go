// Command vacstat partitions a vacancies table by year and computes
// aggregate salary statistics over it.
package main

import (
	"os"

	"github.com/airbloc/logger"
	"github.com/spf13/cobra"
)

var log = logger.New("vacstat.cli")

var rootCmd = &cobra.Command{
	Use:           "vacstat",
	Short:         "Vacancy statistics toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", err)
		os.Exit(1)
	}
}
