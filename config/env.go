package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	DBDriver    string `mapstructure:"DB_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBURL       string `mapstructure:"DB_URL"`
	GormLog     string `mapstructure:"GORM_LOG"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`
	RedisPass string `mapstructure:"REDIS_PASS"`
	RedisDB   int    `mapstructure:"REDIS_DB"`
	CacheTTL  int    `mapstructure:"CACHE_TTL"` // detik

	JWTSecret   string `mapstructure:"API_JWT_SECRET"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	LowStockThreshold int    `mapstructure:"LOW_STOCK_THRESHOLD"`
	LowStockCron      string `mapstructure:"LOW_STOCK_CRON"`
}

var envKeys = []string{
	"PORT", "GIN_MODE",
	"DB_DRIVER", "DATABASE_URL", "DB_URL", "GORM_LOG",
	"REDIS_ADDR", "REDIS_PASS", "REDIS_DB", "CACHE_TTL",
	"API_JWT_SECRET", "CORS_ORIGINS",
	"LOW_STOCK_THRESHOLD", "LOW_STOCK_CRON",
}

func Default() Config {
	return Config{
		Port:              "3001",
		DBDriver:          "postgres",
		GormLog:           "warn",
		CacheTTL:          60,
		CORSOrigins:       "*",
		LowStockThreshold: 5,
		LowStockCron:      "@every 1h",
	}
}

// Load membaca .env (kalau ada) lalu environment variable di atas nilai default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Gagal baca .env: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv men-decode env ke Config. Key yang tidak di-set tetap memakai default;
// LOW_STOCK_CRON yang di-set kosong berarti job dimatikan.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	raw := make(map[string]interface{}, len(envKeys))
	for _, k := range envKeys {
		if v, ok := lookup(k); ok {
			raw[k] = strings.TrimSpace(v)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return cfg, fmt.Errorf("config: DB_DRIVER %q tidak didukung", cfg.DBDriver)
	}
	if cfg.LowStockThreshold < 0 {
		return cfg, fmt.Errorf("config: LOW_STOCK_THRESHOLD harus >= 0")
	}
	return cfg, nil
}

// DSN: DATABASE_URL (Render/Supabase) lalu DB_URL.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DBURL
}

func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
