package http

import (
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        alert.UseCase
	loginPath string
}

func New(l log.Logger, uc alert.UseCase, loginPath string) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		loginPath: loginPath,
	}
}
