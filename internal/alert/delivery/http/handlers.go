package http

import (
	"net/http"

	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

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

	response.OK(c, h.newListResp(o))
}

func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processMarkReadRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MarkRead(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
