package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER. Tidak ada global; caller yang memegang *gorm.DB.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      gormLogLevel(cfg.GormLog),
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DSN()
		if dsn == "" {
			dsn = "root:@tcp(localhost:3306)/inventory?parseTime=true&charset=utf8mb4&loc=UTC"
		}
		dialector = mysql.Open(dsn)
	case "sqlite":
		dsn := cfg.DSN()
		if dsn == "" {
			dsn = "inventory.db"
		}
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(PostgresDSN(cfg.DSN()))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("gagal konek ke database: %w", err)
	}

	switch cfg.DBDriver {
	case "postgres":
		if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
			log.Printf("⚠️  Gagal set timezone UTC: %v", err)
		}
		var dbName, currentUser, searchPath string
		_ = db.Raw("SELECT current_database()").Scan(&dbName)
		_ = db.Raw("SELECT current_user").Scan(&currentUser)
		_ = db.Raw("SHOW search_path").Scan(&searchPath)
		log.Printf("✅ DB connected: db=%s user=%s search_path=%s", dbName, currentUser, searchPath)
	case "sqlite":
		// satu writer; busy_timeout supaya transaksi per item tidak langsung "database is locked"
		db.Exec("PRAGMA journal_mode=WAL")
		db.Exec("PRAGMA busy_timeout=5000")
		log.Printf("✅ DB connected: sqlite %s", cfg.DSN())
	default:
		log.Printf("✅ DB connected: %s", cfg.DBDriver)
	}

	return db, nil
}

// PostgresDSN: URL hosted (Supabase/Render) butuh sslmode=require dan search_path=public;
// kalau kosong pakai DSN lokal.
func PostgresDSN(dbURL string) string {
	if dbURL == "" {
		return "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"
	}
	if !strings.Contains(dbURL, "sslmode=") {
		dbURL = appendParam(dbURL, "sslmode=require")
	}
	if !strings.Contains(dbURL, "search_path=") {
		dbURL = appendParam(dbURL, "search_path=public")
	}
	return dbURL
}

func appendParam(dbURL, kv string) string {
	// DSN bentuk key=value (bukan URL) dipisah spasi
	if !strings.Contains(dbURL, "://") {
		return dbURL + " " + kv
	}
	sep := "?"
	if strings.Contains(dbURL, "?") {
		sep = "&"
	}
	return dbURL + sep + kv
}

func gormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent", "off":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
