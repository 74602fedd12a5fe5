package config

import (
	"strings"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "3001" || cfg.DBDriver != "postgres" || cfg.LowStockThreshold != 5 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.LowStockCron != "@every 1h" {
		t.Errorf("LowStockCron = %q, want @every 1h", cfg.LowStockCron)
	}
	if cfg.CacheTTLDuration() != time.Minute {
		t.Errorf("CacheTTLDuration = %v, want 1m", cfg.CacheTTLDuration())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"PORT":                "9000",
		"DB_DRIVER":           "SQLite",
		"DB_URL":              "file.db",
		"REDIS_DB":            "2",
		"CACHE_TTL":           "5",
		"LOW_STOCK_THRESHOLD": " 10 ",
		"LOW_STOCK_CRON":      "",
		"CORS_ORIGINS":        "http://a.test, http://b.test",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "9000" || cfg.DBDriver != "sqlite" || cfg.RedisDB != 2 || cfg.LowStockThreshold != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DSN() != "file.db" {
		t.Errorf("DSN = %q, want file.db", cfg.DSN())
	}
	if cfg.LowStockCron != "" {
		t.Errorf("LowStockCron = %q, want empty (disabled)", cfg.LowStockCron)
	}
	if got := cfg.AllowedOrigins(); len(got) != 2 || got[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", got)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"driver":    {"DB_DRIVER": "oracle"},
		"threshold": {"LOW_STOCK_THRESHOLD": "-1"},
		"not a num": {"CACHE_TTL": "sebentar"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(env)); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestDSN_PrefersDatabaseURL(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://a", DBURL: "postgres://b"}
	if cfg.DSN() != "postgres://a" {
		t.Errorf("DSN = %q, want postgres://a", cfg.DSN())
	}
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db.supabase.co:5432/postgres",
			"postgres://u:p@db.supabase.co:5432/postgres?sslmode=require&search_path=public"},
		{"postgres://u:p@h/db?sslmode=disable",
			"postgres://u:p@h/db?sslmode=disable&search_path=public"},
		{"host=h user=u dbname=d",
			"host=h user=u dbname=d sslmode=require search_path=public"},
	}
	for _, tt := range tests {
		if got := PostgresDSN(tt.in); got != tt.want {
			t.Errorf("PostgresDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := PostgresDSN(""); !strings.Contains(got, "host=localhost") {
		t.Errorf("empty url fallback = %q", got)
	}
}
