package http

import (
	"errors"
	"net/http"

	"dashboard-srv/internal/session"
	pkgErrors "dashboard-srv/pkg/errors"
)

var (
	errTokenRequired      = pkgErrors.NewHTTPError(400, "Token is required")
	errTokenExpired       = pkgErrors.NewHTTPError(401, "Token has expired")
	errSessionUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Session store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrTokenRequired):
		return errTokenRequired
	case errors.Is(err, session.ErrTokenExpired):
		return errTokenExpired
	default:
		// anything else comes from the token store
		return errSessionUnavailable
	}
}
