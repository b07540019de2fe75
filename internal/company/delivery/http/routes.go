package http

import (
	"dashboard-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RequireSession())

	companies := api.Group("/companies")
	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET("/view", h.View)
		companies.GET("/facets", h.Facets)
		companies.GET("/stats", h.Stats)
		companies.PUT("/filters", h.SetFilters)
		companies.DELETE("/filters", h.ClearFilters)
		companies.GET("/focused", h.Focused)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
		companies.GET("/:id/trends", h.Trends)
		companies.POST("/:id/refresh", h.Refresh)
	}

	api.GET("/sync/status", h.SyncStatus)
}
