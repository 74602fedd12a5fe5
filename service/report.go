package service

import (
	"context"

	"github.com/levarentz132/storing/models"
)

// ===== Laporan stok menipis =====

type LowStockRow struct {
	ItemCode   string `json:"item_code"`
	NamaBarang string `json:"nama_barang"`
	Type       string `json:"type"`
	Satuan     string `json:"satuan"`
	Quantity   int    `json:"quantity"`
	StatusStok string `json:"status_stok"` // EMPTY | LOW
}

// LowStock mengembalikan barang dengan quantity <= threshold, paling sedikit dulu.
func (s *StockService) LowStock(ctx context.Context, threshold int) ([]LowStockRow, error) {
	if threshold < 0 {
		threshold = 0
	}

	rows := make([]LowStockRow, 0)
	err := s.db.WithContext(ctx).
		Model(&models.StockItem{}).
		Select(`
			item_code,
			nama_barang,
			type,
			satuan,
			quantity,
			CASE WHEN quantity = 0 THEN 'EMPTY' ELSE 'LOW' END AS status_stok
		`).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Order("item_code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
