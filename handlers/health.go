package handlers

import (
	"net/http"

	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
)

const livenessText = "Hello Doctor Uncle"

func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, livenessText)
}

// HealthHandler reports the last dependency snapshot. It answers 503 while mongo is down.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
