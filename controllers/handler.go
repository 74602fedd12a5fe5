package controllers

import (
	"context"

	"github.com/levarentz132/storing/models"
	"github.com/levarentz132/storing/service"
	"github.com/levarentz132/storing/utils"
)

type stockServicer interface {
	Ping(ctx context.Context) error
	ListStock(ctx context.Context) ([]models.StockItem, error)
	SearchStock(ctx context.Context, f service.SearchFilter) ([]models.StockItem, error)
	CreateItem(ctx context.Context, item models.StockItem) (models.StockItem, error)
	UpdateItem(ctx context.Context, itemCode string, in service.UpdateItemInput) ([]models.StockItem, error)
	ApplyBatch(ctx context.Context, action models.Action, items []models.MovementItem, requester string) (service.BatchResult, error)
	ListTransactions(ctx context.Context, f service.TransactionFilter) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id uint) (models.Transaction, error)
	LowStock(ctx context.Context, threshold int) ([]service.LowStockRow, error)
}

// Handler memegang dependency semua endpoint; tidak ada koneksi global.
type Handler struct {
	svc               stockServicer
	lowStockThreshold int
}

func NewHandler(svc stockServicer, lowStockThreshold int) *Handler {
	utils.RegisterValidators()
	return &Handler{svc: svc, lowStockThreshold: lowStockThreshold}
}
