package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MissingFields dipakai untuk semua body yang gagal binding/validasi.
const MissingFields = "Missing required fields"

func BadRequest(c *gin.Context, err error) {
	resp := gin.H{"error": MissingFields}
	if err != nil {
		resp["detail"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// StoreError meneruskan pesan error database apa adanya.
func StoreError(c *gin.Context, err error) {
	resp := gin.H{"error": err.Error()}
	if code := SQLState(err); code != "" {
		resp["code"] = code
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// DataError untuk endpoint list yang selalu membalas {data, error}.
func DataError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"data": nil, "error": err.Error()})
}

func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data, "error": nil})
}
