package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins. Entries are exact origins,
// wildcard subdomains ("https://*.example.com") or "*".
func (m Middleware) CORS() gin.HandlerFunc {
	origins := m.cfg.AllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(origins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "lang", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, a := range allowed {
		switch {
		case a == "*":
			return true
		case strings.EqualFold(a, origin):
			return true
		case strings.Contains(a, "*."):
			if wildcardMatch(a, origin) {
				return true
			}
		}
	}
	return false
}

// wildcardMatch matches "scheme://*.domain" against an origin on a strict subdomain.
func wildcardMatch(pattern, origin string) bool {
	scheme, host, ok := strings.Cut(pattern, "://")
	if !ok {
		scheme, host = "", pattern
	}
	suffix := strings.TrimPrefix(host, "*")

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if scheme != "" && !strings.EqualFold(u.Scheme, scheme) {
		return false
	}
	h := strings.ToLower(u.Host)
	suffix = strings.ToLower(suffix)
	return strings.HasSuffix(h, suffix) && len(h) > len(suffix)
}
