package controllers

import (
	"strings"

	"github.com/levarentz132/storing/utils"

	"github.com/gin-gonic/gin"
)

// currentRequester: requester dari body, kalau kosong pakai subject token.
func currentRequester(c *gin.Context, fromBody string) string {
	if r := strings.TrimSpace(fromBody); r != "" {
		return r
	}
	v, ok := c.Get(utils.ContextRequesterKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
