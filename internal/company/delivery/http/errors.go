package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/company"
	pkgErrors "dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID          = pkgErrors.NewHTTPError(400, "Invalid company ID")
	errInvalidPage        = pkgErrors.NewHTTPError(400, "Invalid page")
	errNameRequired       = pkgErrors.NewHTTPError(400, "Name is required")
	errIndustryRequired   = pkgErrors.NewHTTPError(400, "Industry is required")
	errCountryRequired    = pkgErrors.NewHTTPError(400, "Country is required")
	errEmptyPatch         = pkgErrors.NewHTTPError(400, "Nothing to update")
	errInvalidTrendDays   = pkgErrors.NewHTTPError(400, "Days must be between 7 and 365")
	errInvalidRefreshDays = pkgErrors.NewHTTPError(400, "Days back must be between 1 and 365")
	errNoFocused          = pkgErrors.NewHTTPError(404, "No company selected")
	errUpstreamServer     = pkgErrors.NewHTTPError(http.StatusBadGateway, "Upstream service error")
	errUpstreamTimeout    = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Upstream service unreachable")
)

// respondError answers a usecase failure. A rejected session sends the UI back to login.
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
	case errors.Is(err, company.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, company.ErrInvalidPage):
		return errInvalidPage
	case errors.Is(err, company.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, company.ErrIndustryRequired):
		return errIndustryRequired
	case errors.Is(err, company.ErrCountryRequired):
		return errCountryRequired
	case errors.Is(err, company.ErrEmptyPatch):
		return errEmptyPatch
	case errors.Is(err, company.ErrInvalidTrendDays):
		return errInvalidTrendDays
	case errors.Is(err, company.ErrInvalidRefreshDays):
		return errInvalidRefreshDays
	case errors.Is(err, company.ErrNoFocused):
		return errNoFocused
	case errors.As(err, &gwErr) && gwErr.Kind == gateway.KindValidation:
		httpErr := pkgErrors.NewHTTPError(gwErr.StatusCode, gwErr.Message)
		if len(gwErr.Fields) > 0 {
			return httpErr.WithDetails(newFieldErrors(gwErr.Fields))
		}
		return httpErr
	case errors.Is(err, gateway.ErrServer):
		return errUpstreamServer
	case errors.Is(err, gateway.ErrTransport):
		return errUpstreamTimeout
	default:
		panic(err)
	}
}
