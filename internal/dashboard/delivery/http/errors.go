package http

import (
	"errors"
	"net/http"

	pkgErrors "dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	errUpstreamServer  = pkgErrors.NewHTTPError(http.StatusBadGateway, "Upstream service error")
	errUpstreamTimeout = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Upstream service unreachable")
)

func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		response.Unauthorized(c, gin.H{"redirect": h.loginPath})
		return
	}
	response.Error(c, h.mapError(err))
}

func (h *handler) mapError(err error) error {
	var gwErr *gateway.Error
	switch {
	case errors.As(err, &gwErr) && gwErr.Kind == gateway.KindValidation:
		return pkgErrors.NewHTTPError(gwErr.StatusCode, gwErr.Message)
	case errors.Is(err, gateway.ErrTransport):
		return errUpstreamTimeout
	default:
		return errUpstreamServer
	}
}
