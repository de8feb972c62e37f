package http

import (
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/middleware"
	"callaudit-srv/pkg/discord"
	"callaudit-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the checklist routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l              log.Logger
	uc             checklist.UseCase
	discord        discord.IDiscord
	maxUploadBytes int64
}

// New - Factory
func New(l log.Logger, uc checklist.UseCase, discord discord.IDiscord, maxUploadBytes int64) Handler {
	return &handler{l: l, uc: uc, discord: discord, maxUploadBytes: maxUploadBytes}
}
