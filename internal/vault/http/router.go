package http

import "github.com/gin-gonic/gin"

// Register attaches Vault routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.GET("/secrets/:mount/*path", h.secret)
}
