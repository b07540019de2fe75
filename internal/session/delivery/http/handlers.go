package http

import (
	"net/http"

	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Login(ctx, req.Token)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(o))
}

func (h *handler) Status(c *gin.Context) {
	o, err := h.uc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newStatusResp(o))
}

func (h *handler) Logout(c *gin.Context) {
	if err := h.uc.Logout(c.Request.Context()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
