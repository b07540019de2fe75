package http

import (
	"net/http"

	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List fetches a page into the cache and returns it through the active filters.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(o, h.uc.View(ctx)))
}

// View returns the filtered cache without contacting the API.
func (h *handler) View(c *gin.Context) {
	response.OK(c, h.newViewResp(h.uc.View(c.Request.Context())))
}

func (h *handler) Facets(c *gin.Context) {
	response.OK(c, h.uc.Facets(c.Request.Context()))
}

func (h *handler) Stats(c *gin.Context) {
	response.OK(c, h.uc.Stats(c.Request.Context()))
}

func (h *handler) SetFilters(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFiltersRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.uc.SetFilters(ctx, req.toFilters())
	response.OK(c, h.newViewResp(h.uc.View(ctx)))
}

func (h *handler) ClearFilters(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.ClearFilters(ctx)
	response.OK(c, h.newViewResp(h.uc.View(ctx)))
}

func (h *handler) Focused(c *gin.Context) {
	o, err := h.uc.Focused(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, o)
}

// Get fetches one company and makes it the focused one.
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, o)
}

func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Create(ctx, req.toDraft())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, o)
}

func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Update(ctx, id, req.toPatch())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, o)
}

func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processTrendsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Trends(ctx, id, req.Days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, o)
}

// Refresh asks the API to re-collect mentions, then returns the re-fetched company.
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processRefreshRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Refresh(ctx, id, req.DaysBack)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRefreshResp(o))
}

func (h *handler) SyncStatus(c *gin.Context) {
	response.OK(c, h.newSyncStatusResp(h.uc.Status(c.Request.Context())))
}
