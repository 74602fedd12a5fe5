package models

import "time"

type StockItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ItemCode   string    `gorm:"uniqueIndex;not null" json:"item_code"`
	NamaBarang string    `json:"nama_barang"`
	Type       string    `json:"type"`
	Satuan     string    `json:"satuan"`
	Quantity   int       `gorm:"not null;default:0;check:chk_stock_items_quantity,quantity >= 0" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (StockItem) TableName() string { return "stock_items" }
