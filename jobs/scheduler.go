// Package jobs menjalankan pekerjaan terjadwal (robfig/cron) di samping HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/levarentz132/storing/service"

	"github.com/robfig/cron/v3"
)

type lowStockReporter interface {
	LowStock(ctx context.Context, threshold int) ([]service.LowStockRow, error)
}

// LowStockJob mencatat barang yang stoknya <= Threshold ke log.
type LowStockJob struct {
	Reporter  lowStockReporter
	Threshold int
	Timeout   time.Duration
	Logger    *log.Logger
}

func (j LowStockJob) Run() {
	timeout := j.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := j.Check(ctx); err != nil {
		j.logf("⚠️  low-stock job gagal: %v", err)
	}
}

// Check menjalankan laporan sekali dan menulis hasilnya ke log.
func (j LowStockJob) Check(ctx context.Context) ([]service.LowStockRow, error) {
	rows, err := j.Reporter.LowStock(ctx, j.Threshold)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		j.logf("low-stock: semua barang di atas %d", j.Threshold)
		return rows, nil
	}
	j.logf("low-stock: %d barang <= %d", len(rows), j.Threshold)
	for _, r := range rows {
		j.logf("  %-12s %-30s qty=%d %s", r.ItemCode, r.NamaBarang, r.Quantity, r.StatusStok)
	}
	return rows, nil
}

func (j LowStockJob) logf(format string, args ...interface{}) {
	if j.Logger != nil {
		j.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// NewScheduler mendaftarkan job low-stock; schedule kosong = tidak ada job (cron tetap valid).
func NewScheduler(schedule string, job LowStockJob) (*cron.Cron, error) {
	c := cron.New()
	if schedule == "" {
		return c, nil
	}
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, fmt.Errorf("gagal register job low-stock (%q): %w", schedule, err)
	}
	return c, nil
}
