package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by GET /health.
const Version = "1.0.0"

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, statusResponse{Status: "healthy", Version: Version})
	})
}
