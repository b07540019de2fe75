package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"dashboard-srv/internal/model"
	pkghttp "dashboard-srv/pkg/http"
)

func (g *gatewayImpl) ListAlerts(ctx context.Context, params ListAlertsParams) ([]model.Alert, error) {
	const op = "ListAlerts"

	q := url.Values{}
	if params.CompanyID != 0 {
		q.Set("company_id", strconv.FormatInt(params.CompanyID, 10))
	}
	if params.UnreadOnly {
		q.Set("unread", "true")
	}
	u := g.url(PathAlerts)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Get(ctx, u, h)
	})
	if err != nil {
		return nil, err
	}
	return decode[[]model.Alert](op, resp)
}

func (g *gatewayImpl) MarkAlertRead(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s%s/%d", g.baseURL, PathAlerts, id)
	body := map[string]bool{"is_read": true}

	_, err := g.call(ctx, "MarkAlertRead", func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Patch(ctx, u, body, h)
	})
	return err
}

func (g *gatewayImpl) Health(ctx context.Context) (HealthStatus, error) {
	const op = "Health"
	u := g.url(PathHealth)

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Get(ctx, u, h)
	})
	if err != nil {
		return HealthStatus{}, err
	}
	return decode[HealthStatus](op, resp)
}
