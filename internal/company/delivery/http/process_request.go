package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processIDRequest(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (int64, updateReq, error) {
	var req updateReq
	id, err := h.processIDRequest(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.delivery.http.processUpdateRequest: ShouldBindJSON failed: %v", err)
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processTrendsRequest(c *gin.Context) (int64, trendsReq, error) {
	var req trendsReq
	id, err := h.processIDRequest(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processRefreshRequest(c *gin.Context) (int64, refreshReq, error) {
	var req refreshReq
	id, err := h.processIDRequest(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return 0, req, err
	}
	return id, req, nil
}

func (h *handler) processFiltersRequest(c *gin.Context) (filtersReq, error) {
	var req filtersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "company.delivery.http.processFiltersRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	return req, nil
}
