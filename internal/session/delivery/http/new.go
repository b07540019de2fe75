package http

import (
	"dashboard-srv/internal/session"
	"dashboard-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc session.UseCase
}

func New(l log.Logger, uc session.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
