package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/levarentz132/storing/cache"
	"github.com/levarentz132/storing/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// Pesan ini dibaca apa adanya oleh UI.
	ErrInsufficientStock = errors.New("Not enough stock or item not found")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
)

// ===== Input =====

type UpdateItemInput struct {
	NamaBarang string
	Type       string
	Satuan     *string
	Quantity   int
}

type SearchFilter struct {
	NamaBarang string // substring, case-insensitive
	Type       string
	Query      string // cari di item_code/nama_barang
}

type TransactionFilter struct {
	Action models.Action // kosong = semua
}

// ===== Service =====

type StockService struct {
	db    *gorm.DB
	cache cache.StockCache
	now   func() time.Time
}

func NewStockService(db *gorm.DB, c cache.StockCache) *StockService {
	if c == nil {
		c = cache.Noop{}
	}
	return &StockService{db: db, cache: c, now: time.Now}
}

func (s *StockService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *StockService) ListStock(ctx context.Context) ([]models.StockItem, error) {
	items, version, ok := s.cache.GetStockList(ctx)
	if ok {
		return items, nil
	}

	items = make([]models.StockItem, 0)
	if err := s.db.WithContext(ctx).Order("item_code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	s.cache.SetStockList(ctx, version, items)
	return items, nil
}

func (s *StockService) SearchStock(ctx context.Context, f SearchFilter) ([]models.StockItem, error) {
	q := s.db.WithContext(ctx).Model(&models.StockItem{})

	if v := strings.TrimSpace(f.NamaBarang); v != "" {
		q = q.Where("LOWER(nama_barang) LIKE ?", likePattern(v))
	}
	if v := strings.TrimSpace(f.Type); v != "" {
		q = q.Where("LOWER(type) LIKE ?", likePattern(v))
	}
	if v := strings.TrimSpace(f.Query); v != "" {
		like := likePattern(v)
		q = q.Where("LOWER(item_code) LIKE ? OR LOWER(nama_barang) LIKE ?", like, like)
	}

	items := make([]models.StockItem, 0)
	if err := q.Order("item_code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem insert tanpa cek duplikat; unique index di database yang menolak.
func (s *StockService) CreateItem(ctx context.Context, item models.StockItem) (models.StockItem, error) {
	item.ID = 0
	if item.Quantity < 0 {
		return item, ErrNegativeQuantity
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return item, err
	}
	s.cache.Invalidate(ctx)
	return item, nil
}

// UpdateItem menimpa nama_barang, type, quantity (bukan partial) dan mengembalikan baris yang berubah.
func (s *StockService) UpdateItem(ctx context.Context, itemCode string, in UpdateItemInput) ([]models.StockItem, error) {
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	updates := map[string]interface{}{
		"nama_barang": in.NamaBarang,
		"type":        in.Type,
		"quantity":    in.Quantity,
		"updated_at":  s.now().UTC(),
	}
	if in.Satuan != nil {
		updates["satuan"] = *in.Satuan
	}

	rows := make([]models.StockItem, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.StockItem{}).Where("item_code = ?", itemCode).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Where("item_code = ?", itemCode).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		s.cache.Invalidate(ctx)
	}
	return rows, nil
}

func (s *StockService) ListTransactions(ctx context.Context, f TransactionFilter) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}

	txs := make([]models.Transaction, 0)
	if err := q.Order("timestamp DESC").Order("id DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *StockService) GetTransaction(ctx context.Context, id uint) (models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
		}
		return tx, err
	}
	return tx, nil
}

func likePattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}
