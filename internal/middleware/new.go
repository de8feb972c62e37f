package middleware

import (
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/scope"
)

// Config configures the auth gate and CORS.
type Config struct {
	// CookieNames are tried in order when no Authorization header is sent.
	CookieNames []string
	// InternalKey, when set, is accepted as a credential on /api/internal routes.
	InternalKey    string
	AllowedOrigins []string
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cfg        Config
}

// New creates the middleware set. A nil jwtManager makes the auth gate check
// credential presence only.
func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}
