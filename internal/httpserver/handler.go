package httpserver

import (
	"context"

	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.tokens, srv.loginPath)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	srv.setupSessionDomain(ctx, r)
	srv.setupCompanyDomain(ctx, r, mw)
	srv.setupAlertDomain(ctx, r, mw)
	srv.setupDashboardDomain(ctx, r, mw)
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.RequestID())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
}
