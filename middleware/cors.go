package middleware

import (
	"github.com/gin-gonic/gin"
)

// CorsMiddleware sets the CORS headers for browser clients and
// short-circuits preflight requests.
func CorsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, PATCH, DELETE")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}

	c.Next()
}
