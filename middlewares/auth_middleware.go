package middlewares

import (
	"net/http"
	"strings"

	"github.com/levarentz132/storing/utils"

	"github.com/gin-gonic/gin"
)

// Auth mewajibkan Bearer token HS256. Secret kosong = auth dimatikan.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token tidak ditemukan"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := utils.VerifyToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid"})
			return
		}

		c.Set(utils.ContextRequesterKey, utils.Subject(claims))
		c.Next()
	}
}
