package httpserver

import (
	"context"

	"dashboard-srv/config"
	companyHTTP "dashboard-srv/internal/company/delivery/http"
	companyMemory "dashboard-srv/internal/company/repository/memory"
	companyUsecase "dashboard-srv/internal/company/usecase"
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupCompanyDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	cacheRepo := companyMemory.New()

	uc := companyUsecase.New(srv.l, srv.gateway, cacheRepo, srv.syncReporter, srv.metrics, syncConfig(srv.config.Sync))
	srv.companyUC = uc

	handler := companyHTTP.New(srv.l, uc, srv.loginPath)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Company domain registered")
}

func syncConfig(cfg config.SyncConfig) companyUsecase.Config {
	return companyUsecase.Config{
		DefaultLimit: int64(cfg.DefaultLimit),
		RecentEvents: cfg.RecentEvents,
	}
}
