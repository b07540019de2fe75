package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the session routes. They are never behind the session guard.
func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/session")
	{
		api.POST("", h.Login)
		api.GET("", h.Status)
		api.DELETE("", h.Logout)
	}
}
