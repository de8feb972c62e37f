package httpserver

import (
	"context"
	"net/http"
	"time"

	"callaudit-srv/internal/store"
	"callaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 3 * time.Second

type dependencyStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type storageResp struct {
	Backend string      `json:"backend"`
	Healthy bool        `json:"healthy"`
	Error   string      `json:"error,omitempty"`
	Stats   store.Stats `json:"stats"`
}

// healthCheck handles liveness checks on /health and /healthz
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"service": srv.config.Service.Name,
	})
}

// version reports the running build
// @Summary Version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /version [get]
func (srv *HTTPServer) version(c *gin.Context) {
	response.OK(c, gin.H{
		"service":     srv.config.Service.Name,
		"version":     srv.config.Service.Version,
		"environment": srv.environment,
	})
}

// readyCheck pings the store and every optional dependency that is configured.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	deps := []dependencyStatus{checkDependency(srv.store.Kind(), srv.store.Ping(ctx))}
	if srv.redis != nil {
		deps = append(deps, checkDependency("redis", srv.redis.Ping(ctx)))
	}
	if srv.minio != nil {
		deps = append(deps, checkDependency("minio", srv.minio.HealthCheck(ctx)))
	}
	if srv.producer != nil {
		deps = append(deps, checkDependency("kafka", srv.producer.HealthCheck()))
	}

	status := http.StatusOK
	state := "ready"
	for _, d := range deps {
		if d.Status != "up" {
			status = http.StatusServiceUnavailable
			state = "not ready"
			break
		}
	}
	c.JSON(status, gin.H{
		"status":       state,
		"dependencies": deps,
	})
}

// storage reports the active report store
// @Summary Storage backend
// @Tags Admin
// @Produce json
// @Success 200 {object} storageResp
// @Router /api/admin/storage [get]
func (srv *HTTPServer) storage(c *gin.Context) {
	ctx := c.Request.Context()

	resp := storageResp{Backend: srv.store.Kind(), Healthy: true}
	if err := srv.store.Ping(ctx); err != nil {
		resp.Healthy = false
		resp.Error = err.Error()
	}

	stats, err := srv.store.Stats(ctx)
	if err != nil {
		srv.l.Warnf(ctx, "httpserver.storage: stats: %v", err)
		resp.Healthy = false
		if resp.Error == "" {
			resp.Error = err.Error()
		}
	}
	resp.Stats = stats

	response.OK(c, resp)
}

func (srv *HTTPServer) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.GET("/storage", srv.storage)
}

func checkDependency(name string, err error) dependencyStatus {
	if err != nil {
		return dependencyStatus{Name: name, Status: "down", Error: err.Error()}
	}
	return dependencyStatus{Name: name, Status: "up"}
}
