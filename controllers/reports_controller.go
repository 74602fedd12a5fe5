package controllers

import (
	"net/http"
	"strconv"

	"github.com/levarentz132/storing/utils"

	"github.com/gin-gonic/gin"
)

// GET /reports/low-stock?threshold=
func (h *Handler) LowStock(c *gin.Context) {
	threshold := h.lowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold tidak valid"})
			return
		}
		threshold = v
	}

	rows, err := h.svc.LowStock(c.Request.Context(), threshold)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "threshold": threshold})
}

// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
