// Package cmd berisi perintah CLI (cobra): serve, migrate, token, report.
package cmd

import (
	"fmt"
	"os"

	"github.com/levarentz132/storing/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "storing",
	Short:         "Inventory stock IN/OUT API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openDB dipakai semua perintah yang butuh database.
func openDB() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
