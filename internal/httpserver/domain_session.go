package httpserver

import (
	"context"

	sessionHTTP "dashboard-srv/internal/session/delivery/http"
	sessionUsecase "dashboard-srv/internal/session/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup) {
	uc := sessionUsecase.New(srv.l, srv.tokens, srv.inspector)

	handler := sessionHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Session domain registered")
}
