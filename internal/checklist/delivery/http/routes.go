package http

import (
	"callaudit-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/checklists")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.POST("/upload", h.Upload)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}
