package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/levarentz132/storing/models"
	"github.com/levarentz132/storing/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemStatus string

const (
	StatusUpdated  ItemStatus = "updated"
	StatusInserted ItemStatus = "inserted"
	StatusError    ItemStatus = "error"
)

type ItemResult struct {
	ItemCode string     `json:"item_code"`
	Status   ItemStatus `json:"status"`
	Error    string     `json:"error,omitempty"`
}

// BatchResult: Transaction nil kalau tidak ada item yang dikenali.
type BatchResult struct {
	Results     []ItemResult
	Transaction *models.Transaction
	LogError    error
}

// ApplyBatch memproses IN/OUT per item secara berurutan. Tiap item punya transaksi
// database sendiri (row lock + update atomik), jadi batch bisa sukses sebagian.
// Item yang baru di-insert lewat IN tidak ikut dicatat di log transaksi.
func (s *StockService) ApplyBatch(ctx context.Context, action models.Action, items []models.MovementItem, requester string) (BatchResult, error) {
	if action != models.ActionIn && action != models.ActionOut {
		return BatchResult{}, fmt.Errorf("action %q tidak dikenal", action)
	}

	out := BatchResult{Results: make([]ItemResult, 0, len(items))}
	recognized := make([]models.MovementItem, 0, len(items))
	wrote := false

	for _, it := range items {
		res, logged := s.applyItem(ctx, action, it)
		out.Results = append(out.Results, res)
		if res.Status != StatusError {
			wrote = true
		}
		if logged != nil {
			recognized = append(recognized, *logged)
		}
	}

	if wrote {
		s.cache.Invalidate(ctx)
	}

	if len(recognized) > 0 {
		tx := models.Transaction{
			Action:    action,
			Items:     recognized,
			Requester: requester,
			Timestamp: s.now().UTC(),
		}
		if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
			log.Printf("⚠️  gagal mencatat transaksi %s (%d item): %v", action, len(recognized), err)
			out.LogError = err
		} else {
			out.Transaction = &tx
		}
	}

	return out, nil
}

// applyItem mengembalikan item versi log kalau item dikenali (baris lama yang di-update).
func (s *StockService) applyItem(ctx context.Context, action models.Action, it models.MovementItem) (ItemResult, *models.MovementItem) {
	res := ItemResult{ItemCode: it.ItemCode}
	if it.Quantity <= 0 {
		res.Status = StatusError
		res.Error = fmt.Sprintf("quantity must be positive, got %d", it.Quantity)
		return res, nil
	}

	const maxAttempts = 2
	var (
		existing models.StockItem
		inserted bool
		err      error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		inserted = false
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var lookupErr error
			existing, lookupErr = lockItem(tx, it.ItemCode)
			if errors.Is(lookupErr, ErrNotFound) {
				if action == models.ActionOut {
					return ErrInsufficientStock
				}
				inserted = true
				return tx.Create(&models.StockItem{
					ItemCode:   it.ItemCode,
					NamaBarang: it.NamaBarang,
					Type:       it.Type,
					Satuan:     it.Satuan,
					Quantity:   it.Quantity,
				}).Error
			}
			if lookupErr != nil {
				return lookupErr
			}

			if action == models.ActionIn {
				return tx.Model(&models.StockItem{}).
					Where("id = ?", existing.ID).
					Updates(map[string]interface{}{
						"quantity":   gorm.Expr("quantity + ?", it.Quantity),
						"updated_at": s.now().UTC(),
					}).Error
			}

			if existing.Quantity < it.Quantity {
				return ErrInsufficientStock
			}
			// guard quantity >= ? tetap dipasang untuk driver tanpa row lock (sqlite)
			upd := tx.Model(&models.StockItem{}).
				Where("id = ? AND quantity >= ?", existing.ID, it.Quantity).
				Updates(map[string]interface{}{
					"quantity":   gorm.Expr("quantity - ?", it.Quantity),
					"updated_at": s.now().UTC(),
				})
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				return ErrInsufficientStock
			}
			return nil
		})

		// insert kalah balapan dengan request lain: ulangi sekali lewat jalur update
		if inserted && attempt < maxAttempts && utils.IsUniqueViolation(err) {
			continue
		}
		break
	}

	if err != nil {
		res.Status = StatusError
		res.Error = err.Error()
		return res, nil
	}
	if inserted {
		res.Status = StatusInserted
		return res, nil
	}

	res.Status = StatusUpdated
	logged := withFallback(it, existing)
	return res, &logged
}

func lockItem(tx *gorm.DB, itemCode string) (models.StockItem, error) {
	var item models.StockItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_code = ?", itemCode).
		Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrNotFound
	}
	return item, err
}

// withFallback: nama_barang/type dari request, lalu dari stok, lalu "-".
func withFallback(it models.MovementItem, stored models.StockItem) models.MovementItem {
	it.NamaBarang = firstNonEmpty(it.NamaBarang, stored.NamaBarang, "-")
	it.Type = firstNonEmpty(it.Type, stored.Type, "-")
	return it
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
