package cmd

import (
	"log"

	"github.com/levarentz132/storing/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the stock_items and stock_transactions tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := config.AutoMigrate(db); err != nil {
			return err
		}
		log.Println("✅ migrate selesai")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
