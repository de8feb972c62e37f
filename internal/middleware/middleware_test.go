package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type stubVerifier struct {
	valid string
}

func (s stubVerifier) Verify(token string) (scope.Payload, error) {
	if token != s.valid {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "u1", Role: model.RoleAdmin}, nil
}

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", mw.Gate())
	handler := func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.Role)
	}
	api.GET("/analyses", handler)
	api.POST("/analyze", handler)
	api.DELETE("/analyses/:id", handler)
	api.GET("/admin/storage", handler)
	api.GET("/internal/ping", handler)
	return r
}

func TestGate(t *testing.T) {
	tests := []struct {
		name     string
		mw       Middleware
		method   string
		path     string
		header   string
		cookie   *http.Cookie
		wantCode int
		wantBody string
	}{
		{
			name:     "public read without credentials",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}}),
			method:   http.MethodGet,
			path:     "/api/analyses",
			wantCode: http.StatusOK,
			wantBody: model.RoleAnonymous,
		},
		{
			name:     "mutation without credentials",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}}),
			method:   http.MethodPost,
			path:     "/api/analyze",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "presence only accepts any bearer",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}}),
			method:   http.MethodPost,
			path:     "/api/analyze",
			header:   "Bearer whatever",
			wantCode: http.StatusOK,
			wantBody: model.RoleUser,
		},
		{
			name:     "second cookie name is read",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"access_token", "session"}}),
			method:   http.MethodDelete,
			path:     "/api/analyses/a1",
			cookie:   &http.Cookie{Name: "session", Value: "abc"},
			wantCode: http.StatusOK,
			wantBody: model.RoleUser,
		},
		{
			name:     "admin read requires credentials",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}}),
			method:   http.MethodGet,
			path:     "/api/admin/storage",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "jwt rejects bad token",
			mw:       New(log.NewNop(), stubVerifier{valid: "good"}, Config{CookieNames: []string{"session"}}),
			method:   http.MethodPost,
			path:     "/api/analyze",
			header:   "Bearer bad",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "jwt accepts raw header token",
			mw:       New(log.NewNop(), stubVerifier{valid: "good"}, Config{CookieNames: []string{"session"}}),
			method:   http.MethodPost,
			path:     "/api/analyze",
			header:   "good",
			wantCode: http.StatusOK,
			wantBody: model.RoleAdmin,
		},
		{
			name:     "internal route needs the internal key",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}, InternalKey: "k"}),
			method:   http.MethodGet,
			path:     "/api/internal/ping",
			header:   "Bearer other",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "internal key grants service scope",
			mw:       New(log.NewNop(), nil, Config{CookieNames: []string{"session"}, InternalKey: "k"}),
			method:   http.MethodGet,
			path:     "/api/internal/ping",
			header:   "Bearer k",
			wantCode: http.StatusOK,
			wantBody: model.RoleService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(tt.mw)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://*.example.com"}
	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:3000", true},
		{"http://localhost:3001", false},
		{"https://app.example.com", true},
		{"https://a.b.example.com", true},
		{"https://example.com", false},
		{"http://app.example.com", false},
		{"https://evilexample.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			if got := originAllowed(allowed, tt.origin); got != tt.want {
				t.Errorf("originAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}

	if !originAllowed([]string{"*"}, "https://anything.io") {
		t.Error("* should allow every origin")
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), nil, Config{AllowedOrigins: []string{"https://*.example.com"}})
	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.io")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("disallowed origin status = %d, want 403", w.Code)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
