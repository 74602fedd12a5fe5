package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/levarentz132/storing/models"
	"github.com/levarentz132/storing/service"
	"github.com/levarentz132/storing/utils"

	"github.com/gin-gonic/gin"
)

// GET /transactions?action=IN|OUT
func (h *Handler) ListTransactions(c *gin.Context) {
	var f service.TransactionFilter
	if raw := c.Query("action"); raw != "" {
		action, ok := models.ParseAction(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"data": nil, "error": "action harus IN atau OUT"})
			return
		}
		f.Action = action
	}

	txs, err := h.svc.ListTransactions(c.Request.Context(), f)
	if err != nil {
		utils.DataError(c, err)
		return
	}
	utils.Data(c, txs)
}

// GET /transactions/:id
func (h *Handler) GetTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	tx, err := h.svc.GetTransaction(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaksi tidak ditemukan"})
			return
		}
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tx})
}
