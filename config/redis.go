package config

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis mengembalikan nil kalau REDIS_ADDR kosong (cache dimatikan).
func NewRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
}
