package http

import "github.com/gin-gonic/gin"

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errTokenRequired
	}
	return req, nil
}
