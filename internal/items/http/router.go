package http

import "github.com/gin-gonic/gin"

// Register attaches item routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/items", h.list)
	r.GET("/items/:id", h.get)
	r.POST("/items", h.create)
	r.PUT("/items/:id", h.update)
	r.DELETE("/items/:id", h.delete)
}
