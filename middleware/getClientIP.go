package middleware

import (
	"github.com/gin-gonic/gin"
)

// getClientIP returns the peer address. Forwarded headers are only honored when the
// peer is one of the router's trusted proxies (see gin.Engine.SetTrustedProxies).
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}
