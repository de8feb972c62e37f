package http

import (
	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/middleware"
	"callaudit-srv/pkg/discord"
	"callaudit-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves /analyze and the analysis history.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
