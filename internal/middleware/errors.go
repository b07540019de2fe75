package middleware

import (
	"net/http"

	pkgErrors "dashboard-srv/pkg/errors"
)

var errSessionUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Session store unavailable")
