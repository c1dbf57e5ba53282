package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	tasks := rg.Group("/tasks", mw...)
	{
		tasks.POST("/extract", h.Extract)
		tasks.POST("/extract/file", h.ExtractFile)
		tasks.POST("/schedule", h.Schedule)
	}
}
