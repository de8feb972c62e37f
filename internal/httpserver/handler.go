package httpserver

import (
	"context"

	"callaudit-srv/internal/middleware"
	"callaudit-srv/pkg/scope"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.scopeManager(), middleware.Config{
		CookieNames:    srv.config.Cookie.Names,
		InternalKey:    srv.config.InternalConfig.InternalKey,
		AllowedOrigins: srv.config.CORS.AllowedOrigins,
	})

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api", mw.Gate())

	checklistHandler := srv.setupChecklistDomain(ctx)
	checklistHandler.RegisterRoutes(api, mw)

	managerHandler := srv.setupManagerDomain(ctx)
	managerHandler.RegisterRoutes(api, mw)

	transcriptUC, transcriptHandler := srv.setupTranscriptDomain(ctx)
	transcriptHandler.RegisterRoutes(api, mw)

	analysisHandler := srv.setupAnalysisDomain(ctx, transcriptUC)
	analysisHandler.RegisterRoutes(api, mw)

	srv.registerAdminRoutes(api)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.Locale())

	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Warnf(ctx, "httpserver.registerMiddlewares: no CORS origins configured, cross-origin requests are refused")
	} else {
		srv.l.Infof(ctx, "CORS origins: %v", srv.config.CORS.AllowedOrigins)
	}
	if srv.jwtManager == nil {
		srv.l.Warnf(ctx, "httpserver.registerMiddlewares: jwt secret not set, auth gate checks credential presence only")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/healthz", srv.healthCheck)
	srv.gin.GET("/version", srv.version)
	srv.gin.GET("/ready", srv.readyCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// scopeManager avoids handing the middleware a typed nil.
func (srv *HTTPServer) scopeManager() scope.Manager {
	if srv.jwtManager == nil {
		return nil
	}
	return srv.jwtManager
}
