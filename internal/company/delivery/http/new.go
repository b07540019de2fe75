package http

import (
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/middleware"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        company.UseCase
	loginPath string
}

// New creates the company handler. loginPath is returned to the UI when the session is gone.
func New(l log.Logger, uc company.UseCase, loginPath string) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		loginPath: loginPath,
	}
}
