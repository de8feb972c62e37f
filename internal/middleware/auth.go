package middleware

import (
	"net/http"
	"strings"

	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/response"
	"callaudit-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	adminPrefix    = "/api/admin"
	internalPrefix = "/api/internal"
)

// Gate requires credentials on mutating methods and on admin and internal routes.
// Safe reads pass through with whatever scope the credential yields, if any.
func (m Middleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requiresAuth(c.Request) {
			if token := m.readToken(c); token != "" {
				m.attachScope(c, token)
			}
			c.Next()
			return
		}
		m.authenticate(c)
	}
}

// Auth always requires a credential.
func (m Middleware) Auth() gin.HandlerFunc {
	return m.authenticate
}

func (m Middleware) authenticate(c *gin.Context) {
	token := m.readToken(c)
	if token == "" {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	if !m.attachScope(c, token) {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	c.Next()
}

// attachScope resolves token into a scope and stores it on the request.
// It reports false when the token is rejected.
func (m Middleware) attachScope(c *gin.Context, token string) bool {
	ctx := c.Request.Context()

	var sc model.Scope
	switch {
	case m.cfg.InternalKey != "" && token == m.cfg.InternalKey:
		sc = model.Scope{UserID: "internal", Username: "internal", Role: model.RoleService}
	case m.jwtManager != nil:
		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token rejected: %v", err)
			return false
		}
		ctx = scope.SetPayloadToContext(ctx, payload)
		sc = scope.NewScope(payload)
		if sc.Role == "" {
			sc.Role = model.RoleUser
		}
	default:
		sc = model.Scope{Role: model.RoleUser}
	}

	if strings.HasPrefix(c.Request.URL.Path, internalPrefix) && m.cfg.InternalKey != "" && sc.Role != model.RoleService {
		return false
	}

	c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
	return true
}

// readToken takes "Bearer <t>" or a raw Authorization header, then the configured cookies.
func (m Middleware) readToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
			return strings.TrimSpace(h[7:])
		}
		return h
	}
	for _, name := range m.cfg.CookieNames {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	return ""
}

func requiresAuth(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
	default:
		return true
	}
	p := r.URL.Path
	return strings.HasPrefix(p, adminPrefix) || strings.HasPrefix(p, internalPrefix)
}
