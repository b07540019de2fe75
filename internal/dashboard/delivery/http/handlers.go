package http

import (
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *handler) Overview(c *gin.Context) {
	o, err := h.uc.Overview(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, h.newOverviewResp(o))
}
