package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/levarentz132/storing/models"
	"github.com/levarentz132/storing/service"
	"github.com/levarentz132/storing/utils"

	"github.com/gin-gonic/gin"
)

type CreateItemInput struct {
	ItemCode   string `json:"item_code" binding:"required,notblank"`
	NamaBarang string `json:"nama_barang" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Satuan     string `json:"satuan"`
	Quantity   *int   `json:"quantity" binding:"required,gte=0"`
}

type UpdateItemInput struct {
	NamaBarang string  `json:"nama_barang" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Satuan     *string `json:"satuan"`
	Quantity   *int    `json:"quantity" binding:"required,gte=0"`
}

type MovementItemInput struct {
	ItemCode   string                 `json:"item_code" binding:"required,notblank"`
	Quantity   int                    `json:"quantity" binding:"required,gt=0"`
	NamaBarang string                 `json:"nama_barang"`
	Type       string                 `json:"type"`
	Satuan     string                 `json:"satuan"`
	Stok       *int                   `json:"stok"`
	Extra      map[string]interface{} `json:"-"`
}

// UnmarshalJSON menyimpan key selain field di atas supaya ikut masuk log transaksi.
func (in *MovementItemInput) UnmarshalJSON(b []byte) error {
	type plain MovementItemInput
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := models.ExtraFields(b, "item_code", "quantity", "nama_barang", "type", "satuan", "stok")
	if err != nil {
		return err
	}
	p.Extra = extra
	*in = MovementItemInput(p)
	return nil
}

type MovementInput struct {
	Items     []MovementItemInput `json:"items" binding:"required,min=1,dive"`
	Requester string              `json:"requester"`
}

// POST /stock
func (h *Handler) CreateItem(c *gin.Context) {
	var in CreateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, err)
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), models.StockItem{
		ItemCode:   strings.TrimSpace(in.ItemCode),
		NamaBarang: in.NamaBarang,
		Type:       in.Type,
		Satuan:     in.Satuan,
		Quantity:   *in.Quantity,
	})
	if err != nil {
		utils.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []models.StockItem{item}})
}

// PUT /stock/:item_code
func (h *Handler) UpdateItem(c *gin.Context) {
	itemCode := strings.TrimSpace(c.Param("item_code"))
	var in UpdateItemInput
	if err := c.ShouldBindJSON(&in); err != nil || itemCode == "" {
		utils.BadRequest(c, err)
		return
	}

	rows, err := h.svc.UpdateItem(c.Request.Context(), itemCode, service.UpdateItemInput{
		NamaBarang: in.NamaBarang,
		Type:       in.Type,
		Satuan:     in.Satuan,
		Quantity:   *in.Quantity,
	})
	if err != nil {
		utils.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /stock
func (h *Handler) ListStock(c *gin.Context) {
	items, err := h.svc.ListStock(c.Request.Context())
	if err != nil {
		utils.DataError(c, err)
		return
	}
	utils.Data(c, items)
}

// GET /stock/search?nama_barang=&type=&q=
func (h *Handler) SearchStock(c *gin.Context) {
	items, err := h.svc.SearchStock(c.Request.Context(), service.SearchFilter{
		NamaBarang: c.Query("nama_barang"),
		Type:       c.Query("type"),
		Query:      c.Query("q"),
	})
	if err != nil {
		utils.DataError(c, err)
		return
	}
	utils.Data(c, items)
}

// POST /stock/in
func (h *Handler) StockIn(c *gin.Context) { h.movement(c, models.ActionIn) }

// POST /stock/out
func (h *Handler) StockOut(c *gin.Context) { h.movement(c, models.ActionOut) }

func (h *Handler) movement(c *gin.Context, action models.Action) {
	var in MovementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(c, err)
		return
	}

	items := make([]models.MovementItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.MovementItem{
			ItemCode:   strings.TrimSpace(it.ItemCode),
			Quantity:   it.Quantity,
			NamaBarang: it.NamaBarang,
			Type:       it.Type,
			Satuan:     it.Satuan,
			Stok:       it.Stok,
			Extra:      it.Extra,
		})
	}

	res, err := h.svc.ApplyBatch(c.Request.Context(), action, items, currentRequester(c, in.Requester))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"results": res.Results}
	if res.Transaction != nil {
		resp["transaction"] = res.Transaction
	}
	if res.LogError != nil {
		resp["transaction_error"] = res.LogError.Error()
	}
	c.JSON(http.StatusOK, resp)
}
