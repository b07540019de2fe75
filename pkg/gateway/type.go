package gateway

import (
	"context"
	"time"

	"dashboard-srv/internal/model"
	pkghttp "dashboard-srv/pkg/http"
	"dashboard-srv/pkg/jwt"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/session"
)

// Config holds configuration for the gateway client.
type Config struct {
	// Logger defaults to a no-op logger.
	Logger     log.Logger
	BaseURL    string
	Timeout    time.Duration
	HTTPClient pkghttp.IClient

	// Tokens supplies the bearer token. Required.
	Tokens session.TokenStore
	// Inspector lets the client drop a token that has visibly expired. Optional.
	Inspector jwt.IInspector
	// OnUnauthorized fires after the token has been invalidated. Optional.
	OnUnauthorized func(ctx context.Context)
}

// ListCompaniesParams selects one page of companies.
type ListCompaniesParams struct {
	Page     int
	Limit    int64
	Search   string
	Industry string
}

// CompanyPage is one page of companies plus the server-reported total.
type CompanyPage struct {
	Companies []model.Company
	Total     int64
}

// ListAlertsParams filters the alert list. Zero values are not sent.
type ListAlertsParams struct {
	CompanyID  int64
	UnreadOnly bool
}

// HealthStatus is the upstream health payload.
type HealthStatus struct {
	Status string `json:"status"`
}

type gatewayImpl struct {
	l              log.Logger
	baseURL        string
	httpClient     pkghttp.IClient
	tokens         session.TokenStore
	inspector      jwt.IInspector
	onUnauthorized func(ctx context.Context)
	now            func() time.Time
}
