package handlers

import (
	"github.com/kubev2v/hello-pool/internal/services"
)

type Handler struct {
	poolSrv *services.PoolService
}

func New(poolSrv *services.PoolService) *Handler {
	return &Handler{
		poolSrv: poolSrv,
	}
}
