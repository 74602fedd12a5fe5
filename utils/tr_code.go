package utils

import (
	"fmt"
	"time"
)

// GenTransCode membentuk kode transaksi yang mudah dibaca, mis. TR-2026-000042.
func GenTransCode(seq int64, t time.Time) string {
	if seq <= 0 {
		return ""
	}
	return fmt.Sprintf("TR-%d-%06d", t.UTC().Year(), seq)
}
