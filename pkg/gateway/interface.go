package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"dashboard-srv/internal/model"
	pkghttp "dashboard-srv/pkg/http"
	"dashboard-srv/pkg/log"
)

// IGateway is the typed client of the reputation API.
// Every failure is a *Error classified as transport, unauthorized, validation or server.
// Implementations are safe for concurrent use.
type IGateway interface {
	ListCompanies(ctx context.Context, params ListCompaniesParams) (CompanyPage, error)
	GetCompany(ctx context.Context, id int64) (model.Company, error)
	CreateCompany(ctx context.Context, draft model.CompanyDraft) (model.Company, error)
	UpdateCompany(ctx context.Context, id int64, patch model.CompanyPatch) (model.Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	GetCompanyTrends(ctx context.Context, id int64, days int) (model.CompanyTrends, error)
	RefreshCompany(ctx context.Context, id int64, daysBack int) (model.RefreshSummary, error)

	ListAlerts(ctx context.Context, params ListAlertsParams) ([]model.Alert, error)
	MarkAlertRead(ctx context.Context, id int64) error

	Health(ctx context.Context) (HealthStatus, error)
}

// New creates a new gateway client. Returns the interface.
func New(cfg Config) (IGateway, error) {
	if cfg.Tokens == nil {
		return nil, errors.New("gateway: token store is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = pkghttp.NewClient(pkghttp.ClientConfig{Timeout: cfg.Timeout})
	}
	return &gatewayImpl{
		l:              cfg.Logger,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     cfg.HTTPClient,
		tokens:         cfg.Tokens,
		inspector:      cfg.Inspector,
		onUnauthorized: cfg.OnUnauthorized,
		now:            time.Now,
	}, nil
}
