// Package cache menyimpan snapshot daftar stok supaya GET /stock tidak selalu ke database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/levarentz132/storing/models"

	"github.com/redis/go-redis/v9"
)

const (
	StockListKey    = "storing:stock:list"
	StockVersionKey = "storing:stock:version"
)

// StockCache: setiap Invalidate menaikkan versi. SetStockList hanya menyimpan kalau versinya
// masih sama dengan versi saat GetStockList miss, jadi daftar yang dibaca sebelum ada tulis
// tidak menimpa cache setelah tulis itu.
type StockCache interface {
	GetStockList(ctx context.Context) (items []models.StockItem, version int64, ok bool)
	SetStockList(ctx context.Context, version int64, items []models.StockItem)
	Invalidate(ctx context.Context)
}

// New memilih implementasi: Redis kalau client ada dan bisa di-ping, selain itu Noop.
func New(ctx context.Context, client *redis.Client, ttl time.Duration) StockCache {
	if client == nil {
		log.Println("Redis not configured, stock cache disabled.")
		return Noop{}
	}
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis configured but not reachable, stock cache disabled: %v", err)
		return Noop{}
	}
	log.Println("✅ Redis connection successful, stock cache enabled.")
	return &Redis{client: client, ttl: ttl}
}

type Noop struct{}

func (Noop) GetStockList(context.Context) ([]models.StockItem, int64, bool) { return nil, 0, false }
func (Noop) SetStockList(context.Context, int64, []models.StockItem)        {}
func (Noop) Invalidate(context.Context)                                     {}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetStockList(ctx context.Context) ([]models.StockItem, int64, bool) {
	vals, err := r.client.MGet(ctx, StockListKey, StockVersionKey).Result()
	if err != nil {
		log.Printf("⚠️  cache get: %v", err)
		return nil, -1, false
	}
	version, err := parseVersion(vals[1])
	if err != nil {
		log.Printf("⚠️  cache version: %v", err)
		return nil, -1, false
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}
	var items []models.StockItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️  cache decode: %v", err)
		return nil, version, false
	}
	return items, version, true
}

// SetStockList diam saja kalau versi sudah berubah (ada Invalidate di tengah jalan).
func (r *Redis) SetStockList(ctx context.Context, version int64, items []models.StockItem) {
	if version < 0 {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		log.Printf("⚠️  cache encode: %v", err)
		return
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, StockVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, StockListKey, raw, r.ttl)
			return nil
		})
		return err
	}, StockVersionKey)
	if err != nil && !errors.Is(err, errStale) && !errors.Is(err, redis.TxFailedErr) {
		log.Printf("⚠️  cache set: %v", err)
	}
}

func (r *Redis) Invalidate(ctx context.Context) {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, StockVersionKey)
		pipe.Del(ctx, StockListKey)
		return nil
	})
	if err != nil {
		log.Printf("⚠️  cache invalidate: %v", err)
	}
}

var errStale = errors.New("stock list version changed")

func parseVersion(v interface{}) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected version type %T", v)
	}
	return strconv.ParseInt(s, 10, 64)
}
