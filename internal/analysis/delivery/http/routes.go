package http

import (
	"callaudit-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/analyze", h.Analyze)

	g := r.Group("/analyses")
	{
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.DELETE("/:id", h.Delete)
		g.GET("/:id/markdown", h.Markdown)
		g.GET("/:id/pdf", h.PDF)
	}
}
