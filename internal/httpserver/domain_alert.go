package httpserver

import (
	"context"

	alertHTTP "dashboard-srv/internal/alert/delivery/http"
	alertUsecase "dashboard-srv/internal/alert/usecase"
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupAlertDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := alertUsecase.New(srv.l, srv.gateway, srv.metrics)
	srv.alertUC = uc

	handler := alertHTTP.New(srv.l, uc, srv.loginPath)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Alert domain registered")
}
