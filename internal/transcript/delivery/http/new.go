package http

import (
	"callaudit-srv/internal/middleware"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/pkg/discord"
	"callaudit-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the transcription route.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l              log.Logger
	uc             transcript.UseCase
	discord        discord.IDiscord
	maxUploadBytes int64
}

// New - Factory
func New(l log.Logger, uc transcript.UseCase, discord discord.IDiscord, maxUploadBytes int64) Handler {
	return &handler{l: l, uc: uc, discord: discord, maxUploadBytes: maxUploadBytes}
}
