package v1

import (
	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /pool)
	GetPoolStatus(c *gin.Context)
	// (GET /health)
	GetHealth(c *gin.Context)
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/pool", si.GetPoolStatus)
	router.GET("/health", si.GetHealth)
}
