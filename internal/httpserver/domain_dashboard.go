package httpserver

import (
	"context"

	dashboardHTTP "dashboard-srv/internal/dashboard/delivery/http"
	dashboardUsecase "dashboard-srv/internal/dashboard/usecase"
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupDashboardDomain must run after the company and alert domains.
func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := dashboardUsecase.New(srv.l, srv.companyUC, srv.alertUC)

	handler := dashboardHTTP.New(srv.l, uc, srv.loginPath)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
}
