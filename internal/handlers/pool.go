package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/hello-pool/api/v1"
)

// GetPoolStatus returns worker and queue counters of the pool
// (GET /pool)
func (h *Handler) GetPoolStatus(c *gin.Context) {
	status := h.poolSrv.Status()
	zap.S().Named("pool_handler").Debugw("pool status", "status", status)
	c.JSON(http.StatusOK, v1.NewPoolStatusFromModel(status))
}

// GetHealth reports whether the pool still accepts jobs
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	if !h.poolSrv.Healthy() {
		c.JSON(http.StatusServiceUnavailable, v1.Health{Status: "closed"})
		return
	}
	c.JSON(http.StatusOK, v1.Health{Status: "ok"})
}
