package cache

import (
	"context"
	"testing"
	"time"

	"github.com/levarentz132/storing/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, time.Minute), srv
}

func TestNew_WithoutClientIsNoop(t *testing.T) {
	c := New(context.Background(), nil, time.Minute)
	if _, ok := c.(Noop); !ok {
		t.Fatalf("New(nil) = %T, want Noop", c)
	}
}

func TestNew_UnreachableRedisIsNoop(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	c := New(context.Background(), client, time.Minute)
	if _, ok := c.(Noop); !ok {
		t.Fatalf("New(unreachable) = %T, want Noop", c)
	}
}

func TestNoop(t *testing.T) {
	var c StockCache = Noop{}
	ctx := context.Background()
	c.SetStockList(ctx, 0, []models.StockItem{{ItemCode: "A"}})
	if items, _, ok := c.GetStockList(ctx); ok || items != nil {
		t.Errorf("Noop.GetStockList = %v, %v; want nil, false", items, ok)
	}
	c.Invalidate(ctx)
}

func TestRedis_RoundTrip(t *testing.T) {
	c, srv := newTestRedis(t)
	ctx := context.Background()

	if _, _, ok := c.GetStockList(ctx); ok {
		t.Fatal("empty cache: want miss")
	}
	_, version, _ := c.GetStockList(ctx)

	want := []models.StockItem{
		{ItemCode: "A1", NamaBarang: "Baut", Type: "HW", Satuan: "pcs", Quantity: 7},
		{ItemCode: "B2", NamaBarang: "Mur", Type: "HW", Quantity: 0},
	}
	c.SetStockList(ctx, version, want)

	got, _, ok := c.GetStockList(ctx)
	if !ok {
		t.Fatal("after set: want hit")
	}
	if len(got) != len(want) {
		t.Fatalf("items = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].ItemCode != want[i].ItemCode || got[i].NamaBarang != want[i].NamaBarang ||
			got[i].Satuan != want[i].Satuan || got[i].Quantity != want[i].Quantity {
			t.Errorf("items[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if ttl := srv.TTL(StockListKey); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}

	c.Invalidate(ctx)
	if _, _, ok := c.GetStockList(ctx); ok {
		t.Error("after invalidate: want miss")
	}
	if srv.Exists(StockListKey) {
		t.Error("list key still present after invalidate")
	}
}

func TestRedis_StaleSetIsDropped(t *testing.T) {
	c, _ := newTestRedis(t)
	ctx := context.Background()

	_, version, ok := c.GetStockList(ctx)
	if ok {
		t.Fatal("want miss")
	}

	// tulis terjadi setelah daftar dibaca dari database
	c.Invalidate(ctx)
	c.SetStockList(ctx, version, []models.StockItem{{ItemCode: "OLD", Quantity: 1}})

	if items, _, ok := c.GetStockList(ctx); ok {
		t.Errorf("stale list cached: %+v", items)
	}

	_, fresh, _ := c.GetStockList(ctx)
	if fresh != version+1 {
		t.Errorf("version = %d, want %d", fresh, version+1)
	}
	c.SetStockList(ctx, fresh, []models.StockItem{{ItemCode: "NEW", Quantity: 2}})
	items, _, ok := c.GetStockList(ctx)
	if !ok || len(items) != 1 || items[0].ItemCode != "NEW" {
		t.Errorf("fresh list = %+v, %v; want [NEW]", items, ok)
	}
}

func TestNew_ReachableRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	if c := New(context.Background(), client, time.Minute); c == nil {
		t.Fatal("New = nil")
	} else if _, ok := c.(*Redis); !ok {
		t.Errorf("New(reachable) = %T, want *Redis", c)
	}
}
