package routes

import (
	"github.com/levarentz132/storing/controllers"
	"github.com/levarentz132/storing/middlewares"

	"github.com/gin-gonic/gin"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

// SetupRoutes memasang semua endpoint. Path sama dengan API lama supaya UI tidak berubah.
func SetupRoutes(r *gin.Engine, h *controllers.Handler, opt Options) {
	r.Use(middlewares.RequestID(), middlewares.CORS(opt.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🚀 Inventory API is running"})
	})
	r.GET("/healthz", h.Health)

	auth := middlewares.Auth(opt.JWTSecret)

	stock := r.Group("/stock")
	{
		stock.GET("", h.ListStock)
		stock.GET("/search", h.SearchStock)
		stock.POST("", auth, h.CreateItem)
		stock.PUT("/:item_code", auth, h.UpdateItem)

		// pergerakan stok (keranjang)
		stock.POST("/in", auth, h.StockIn)
		stock.POST("/out", auth, h.StockOut)
	}

	transactions := r.Group("/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:id", h.GetTransaction)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/low-stock", h.LowStock)
	}
}

// NewEngine: gin.Default (logger + recovery) plus semua route.
func NewEngine(h *controllers.Handler, opt Options) *gin.Engine {
	r := gin.Default()
	r.RedirectTrailingSlash = true
	SetupRoutes(r, h, opt)
	return r
}
