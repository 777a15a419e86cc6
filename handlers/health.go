package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voxcal/utils"
)

// HealthHandler reports liveness plus the last keepalive snapshot of the
// external directories.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
