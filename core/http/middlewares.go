package http

import (
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/satori/go.uuid"
)

// SessionMiddleware gives every visitor a stable session_id, kept in the
// cookie session and exposed on the gin context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string

		bucket := sessions.Default(c)
		session := bucket.Get("session_id")

		if session == nil {
			sid = uuid.NewV4().String()
			bucket.Set("session_id", sid)
			bucket.Save()
		} else {
			sid = session.(string)
		}

		// Use same session id anywhere
		c.Set("session_id", sid)
		c.Next()
	}
}

// CORS allows the storefront origin to call the API with credentials.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
