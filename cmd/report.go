package cmd

import (
	"log"
	"os"

	"github.com/levarentz132/storing/cache"
	"github.com/levarentz132/storing/jobs"
	"github.com/levarentz132/storing/service"

	"github.com/spf13/cobra"
)

var reportThreshold int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "One-off stock reports",
}

var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "Print items whose quantity is at or below the threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		threshold := cfg.LowStockThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = reportThreshold
		}
		job := jobs.LowStockJob{
			Reporter:  service.NewStockService(db, cache.Noop{}),
			Threshold: threshold,
			Logger:    log.New(os.Stdout, "", 0),
		}
		_, err = job.Check(cmd.Context())
		return err
	},
}

func init() {
	lowStockCmd.Flags().IntVarP(&reportThreshold, "threshold", "t", 0, "quantity threshold (default LOW_STOCK_THRESHOLD)")
	reportCmd.AddCommand(lowStockCmd)
	rootCmd.AddCommand(reportCmd)
}
