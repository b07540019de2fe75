package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RequireSession())
	{
		api.GET("/dashboard", h.Overview)
	}
}
