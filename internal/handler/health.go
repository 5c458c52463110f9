package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness only; it deliberately does not call the remote
// store, which would burn spreadsheet API quota on every probe.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
