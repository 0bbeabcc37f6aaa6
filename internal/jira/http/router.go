package http

import "github.com/gin-gonic/gin"

// Register attaches Jira routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/auth/test", h.authTest)
	rg.GET("/search", h.search)
	rg.GET("/issues/:key", h.getIssue)
	rg.POST("/issues", h.createIssue)
	rg.POST("/issues/:key/transition", h.transition)
	rg.GET("/projects/:key/status", h.projectStatus)
}
